package tinydialogs

import "fmt"

// MessageBoxKind selects which buttons a message box offers.
type MessageBoxKind int

const (
	// Ok shows a single Ok button.
	Ok MessageBoxKind = iota
	// OkCancel offers the choice of Ok and Cancel.
	OkCancel
	// YesNo offers the choice of Yes and No.
	YesNo
)

// nativeString returns the dialog type keyword the native library expects.
func (k MessageBoxKind) nativeString() string {
	switch k {
	case Ok:
		return "ok"
	case OkCancel:
		return "okcancel"
	case YesNo:
		return "yesno"
	default:
		panic(fmt.Sprintf("tinydialogs: unknown MessageBoxKind %d", int(k)))
	}
}

// String implements fmt.Stringer.
func (k MessageBoxKind) String() string { return k.nativeString() }

// Icon is the decorative hint shown beside a message box message.
// The zero value is IconInfo.
type Icon int

const (
	IconInfo Icon = iota
	IconWarning
	IconError
	IconQuestion
)

func (i Icon) nativeString() string {
	switch i {
	case IconInfo:
		return "info"
	case IconWarning:
		return "warning"
	case IconError:
		return "error"
	case IconQuestion:
		return "question"
	default:
		panic(fmt.Sprintf("tinydialogs: unknown Icon %d", int(i)))
	}
}

// String implements fmt.Stringer.
func (i Icon) String() string { return i.nativeString() }

// Button identifies a message box button, both as the requested default
// button and as the button the user clicked. The values mirror the
// native 0/1 sentinels, which are reused for both directions.
type Button int

const (
	// ButtonCancelNo is either the Cancel or the No button.
	ButtonCancelNo Button = 0
	// ButtonOkYes is either the Ok or the Yes button.
	ButtonOkYes Button = 1
)

// String implements fmt.Stringer.
func (b Button) String() string {
	if b == ButtonOkYes {
		return "ok/yes"
	}
	return "cancel/no"
}

// Filter restricts the files offered by a file dialog to a set of glob
// patterns, described to the user by Description. A nil *Filter means
// no filtering.
type Filter struct {
	Patterns    []string // e.g. ["*.png", "*.jpg"]
	Description string   // e.g. "Image files"
}

// DefaultColor is the initial color handed to the color chooser.
// Exactly one of the two variants, HexColor or RGBColor, is supplied.
type DefaultColor interface {
	isDefaultColor()
}

// HexColor is a "#RRGGBB" string variant of DefaultColor.
type HexColor string

func (HexColor) isDefaultColor() {}

// RGBColor is an 8-bit-per-channel triple variant of DefaultColor.
type RGBColor [3]byte

func (RGBColor) isDefaultColor() {}
