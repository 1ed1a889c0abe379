package tinydialogs

// Provider is the capability interface over the native dialog library.
// It mirrors the native entry points one-to-one at the wire level:
// dialog kinds and icons travel as the lowercase keywords the C side
// parses, button codes as plain ints, and every optional result comes
// back as (value, ok) where ok == false stands for the native NULL
// pointer (user cancelled, headless environment, or any other reason
// the native side produced nothing).
//
// Implementations must return strings that are independently owned by
// the Go side. The real library answers out of a static buffer that is
// overwritten by the next call, so the bytes have to be copied out
// before the method returns.
//
// The zero-argument conventions (empty strings, nil slices) are passed
// through untouched; all validation happens above this interface.
type Provider interface {
	// MessageBox shows a message box and reports the clicked button
	// as the native code (0 = cancel/no, 1 = ok/yes).
	MessageBox(title, message, kind, icon string, defaultButton int) int

	// InputBox shows a single-line input box. A nil defaultText is
	// forwarded as NULL, which also switches the native input box
	// into masked password mode.
	InputBox(title, message string, defaultText *string) (string, bool)

	// SaveFileDialog shows a save-file picker. patterns and
	// description may be empty for an unfiltered dialog.
	SaveFileDialog(title, path string, patterns []string, description string) (string, bool)

	// OpenFileDialog shows an open-file picker. When multi is true
	// the native result is a single pipe-joined string of all
	// selected paths; it is returned raw.
	OpenFileDialog(title, path string, patterns []string, description string, multi bool) (string, bool)

	// SelectFolderDialog shows a folder picker.
	SelectFolderDialog(title, path string) (string, bool)

	// ListDialog shows the list chooser. rows is the native row
	// count, i.e. len(cells) / len(columns). Calling it on a
	// platform where SupportsListDialog reports false is a fatal
	// contract violation.
	ListDialog(title string, columns []string, rows int, cells []string) (string, bool)

	// ColorChooser shows the color picker. Exactly one default is
	// honored: when defaultHex is non-nil the RGB slot is ignored by
	// the native side. On success it returns the chosen color both
	// as a hex string and as an RGB triple.
	ColorChooser(title string, defaultHex *string, defaultRGB [3]byte) (string, [3]byte, bool)

	// SupportsListDialog reports whether the list chooser exists on
	// this platform. It is false on Windows.
	SupportsListDialog() bool
}
