//go:build windows

package native

// ListDialog has no native counterpart on Windows; calling it is a
// caller contract violation, not an environment condition.
func (Provider) ListDialog(title string, columns []string, rows int, cells []string) (string, bool) {
	panic("tinydialogs: list dialog is not supported on windows")
}

// SupportsListDialog reports false on Windows.
func (Provider) SupportsListDialog() bool { return false }
