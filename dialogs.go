package tinydialogs

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Client exposes one blocking operation per dialog kind on top of a
// Provider. Every call marshals its arguments, performs exactly one
// native call, and copies the result out before returning.
//
// A Client holds no state between calls. Concurrent use is only as
// safe as the underlying native library permits, which in practice
// means dialog calls should be serialized by the caller.
type Client struct {
	p   Provider
	log logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger makes the Client trace dialog calls at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a Client bound to the given provider.
func New(p Provider, opts ...Option) *Client {
	if p == nil {
		panic("tinydialogs: nil Provider")
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	c := &Client{p: p, log: discard}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// messageBoxConfig carries the optional message box parameters with
// their documented defaults.
type messageBoxConfig struct {
	icon          Icon
	defaultButton Button
}

// MessageBoxOption configures an optional MessageBox parameter.
type MessageBoxOption func(*messageBoxConfig)

// WithIcon sets the message box icon. The default is IconInfo.
func WithIcon(i Icon) MessageBoxOption {
	return func(cfg *messageBoxConfig) { cfg.icon = i }
}

// WithDefaultButton sets the initially selected button. The default is
// ButtonOkYes.
func WithDefaultButton(b Button) MessageBoxOption {
	return func(cfg *messageBoxConfig) { cfg.defaultButton = b }
}

// MessageBox shows a message box of the given kind and returns the
// button the user clicked.
func (c *Client) MessageBox(kind MessageBoxKind, title, message string, opts ...MessageBoxOption) Button {
	mustBeCSafe("title", title)
	mustBeCSafe("message", message)

	cfg := messageBoxConfig{icon: IconInfo, defaultButton: ButtonOkYes}
	for _, opt := range opts {
		opt(&cfg)
	}

	c.log.WithFields(logrus.Fields{
		"dialog": "message_box",
		"kind":   kind.String(),
		"icon":   cfg.icon.String(),
	}).Debug("Showing native dialog")

	res := c.p.MessageBox(title, message, kind.nativeString(), cfg.icon.nativeString(), int(cfg.defaultButton))
	switch res {
	case 0:
		return ButtonCancelNo
	case 1:
		return ButtonOkYes
	default:
		panic(fmt.Sprintf("tinydialogs: native message box returned %d", res))
	}
}

// InputBox shows a single-line input box. A missing default is
// indistinguishable from an empty one: the box is always prefilled
// with defaultText, which may be "".
func (c *Client) InputBox(title, message, defaultText string) (string, bool) {
	mustBeCSafe("title", title)
	mustBeCSafe("message", message)
	mustBeCSafe("default text", defaultText)

	c.log.WithField("dialog", "input_box").Debug("Showing native dialog")
	return c.p.InputBox(title, message, &defaultText)
}

// PasswordBox shows a masked input box. Unlike InputBox it never
// substitutes an empty prefill; the nil default is what requests
// masked entry from the native side.
func (c *Client) PasswordBox(title, message string) (string, bool) {
	mustBeCSafe("title", title)
	mustBeCSafe("message", message)

	c.log.WithField("dialog", "password_box").Debug("Showing native dialog")
	return c.p.InputBox(title, message, nil)
}

// SaveFileDialog shows a save-file picker starting at path. filter may
// be nil for an unfiltered dialog.
func (c *Client) SaveFileDialog(title, path string, filter *Filter) (string, bool) {
	mustBeCSafe("title", title)
	mustBeCSafe("path", path)
	patterns, description := splitFilter(filter)

	c.log.WithFields(logrus.Fields{
		"dialog":   "save_file",
		"patterns": len(patterns),
	}).Debug("Showing native dialog")
	return c.p.SaveFileDialog(title, path, patterns, description)
}

// OpenFileDialog shows a single-selection open-file picker. It returns
// the first entry of what OpenFileDialogMulti would have produced for
// the same native result.
func (c *Client) OpenFileDialog(title, path string, filter *Filter) (string, bool) {
	raw, ok := c.openFileRaw(title, path, filter, false)
	if !ok {
		return "", false
	}
	first, _, _ := strings.Cut(raw, "|")
	return first, true
}

// OpenFileDialogMulti shows a multi-selection open-file picker. The
// native library joins the selected paths with '|'; the list is
// reconstructed by splitting on it. A cancelled dialog yields
// (nil, false), never an empty list.
func (c *Client) OpenFileDialogMulti(title, path string, filter *Filter) ([]string, bool) {
	raw, ok := c.openFileRaw(title, path, filter, true)
	if !ok {
		return nil, false
	}
	return strings.Split(raw, "|"), true
}

func (c *Client) openFileRaw(title, path string, filter *Filter, multi bool) (string, bool) {
	mustBeCSafe("title", title)
	mustBeCSafe("path", path)
	patterns, description := splitFilter(filter)

	c.log.WithFields(logrus.Fields{
		"dialog":   "open_file",
		"multi":    multi,
		"patterns": len(patterns),
	}).Debug("Showing native dialog")
	return c.p.OpenFileDialog(title, path, patterns, description, multi)
}

// SelectFolderDialog shows a folder picker starting at path.
func (c *Client) SelectFolderDialog(title, path string) (string, bool) {
	mustBeCSafe("title", title)
	mustBeCSafe("path", path)

	c.log.WithField("dialog", "select_folder").Debug("Showing native dialog")
	return c.p.SelectFolderDialog(title, path)
}

// ListDialog shows the list chooser with the given column headers and
// row-major cell values. The native row count is len(cells) divided by
// len(columns); a ragged tail shorter than one row is dropped, like
// the native side does. An empty column list yields an absent result
// without any native call.
//
// Not available on Windows: there the call is a fatal fault. Use
// SupportsListDialog to probe first.
func (c *Client) ListDialog(title string, columns, cells []string) (string, bool) {
	mustBeCSafe("title", title)
	for _, col := range columns {
		mustBeCSafe("column", col)
	}
	for _, cell := range cells {
		mustBeCSafe("cell", cell)
	}

	if len(columns) == 0 {
		return "", false
	}

	c.log.WithFields(logrus.Fields{
		"dialog":  "list",
		"columns": len(columns),
		"cells":   len(cells),
	}).Debug("Showing native dialog")
	return c.p.ListDialog(title, columns, len(cells)/len(columns), cells)
}

// SupportsListDialog reports whether ListDialog may be called on this
// platform.
func (c *Client) SupportsListDialog() bool {
	return c.p.SupportsListDialog()
}

// ColorChooser shows the color picker seeded with def. On success it
// returns the chosen color as a "#RRGGBB" string together with its RGB
// triple. A HexColor default travels as the hex string with a zeroed
// RGB slot (the native side ignores it); an RGBColor default travels
// with no hex string at all.
func (c *Client) ColorChooser(title string, def DefaultColor) (string, [3]byte, bool) {
	mustBeCSafe("title", title)

	var hexPtr *string
	var rgb [3]byte
	switch d := def.(type) {
	case HexColor:
		s := string(d)
		mustBeCSafe("default color", s)
		hexPtr = &s
	case RGBColor:
		rgb = [3]byte(d)
	case nil:
		panic("tinydialogs: nil DefaultColor")
	default:
		panic(fmt.Sprintf("tinydialogs: unknown DefaultColor %T", def))
	}

	c.log.WithField("dialog", "color_chooser").Debug("Showing native dialog")
	return c.p.ColorChooser(title, hexPtr, rgb)
}

// splitFilter flattens an optional Filter into the wire arguments,
// validating every pattern for C-string safety.
func splitFilter(f *Filter) ([]string, string) {
	if f == nil {
		return nil, ""
	}
	for _, p := range f.Patterns {
		mustBeCSafe("filter pattern", p)
	}
	mustBeCSafe("filter description", f.Description)
	return f.Patterns, f.Description
}

// mustBeCSafe panics if s cannot become a C string. An embedded NUL is
// a caller programming error, not a runtime condition, so it aborts
// before any native call happens.
func mustBeCSafe(field, s string) {
	if strings.IndexByte(s, 0) >= 0 {
		panic(fmt.Sprintf("tinydialogs: %s contains an embedded NUL byte", field))
	}
}
