// Package tinydialogs is a Go binding for the tinyfiledialogs native
// dialog library: message boxes, input and password prompts, file and
// folder pickers, a color chooser and a list chooser, all rendered
// with platform-native widgets.
//
// The package itself contains no cgo. All native access goes through
// the Provider interface; the real implementation lives in the native
// subpackage and links the vendored C library:
//
//	dlg := tinydialogs.New(native.Provider{})
//
//	choice := dlg.MessageBox(tinydialogs.YesNo, "hello", "yes or no?",
//		tinydialogs.WithIcon(tinydialogs.IconQuestion))
//
//	name, ok := dlg.InputBox("Enter user name", "Username:", "")
//
//	file, ok := dlg.SaveFileDialog("Save", "password.txt", nil)
//
//	hex, rgb, ok := dlg.ColorChooser("Choose a Color",
//		tinydialogs.HexColor("#FF0000"))
//
// Every operation blocks until the user dismisses the dialog. An
// ok value of false uniformly means the dialog produced nothing:
// the user cancelled, the environment has no display, or the native
// library declined for any other reason. The two cases are not
// distinguishable because the native side does not distinguish them.
//
// Strings passed to any operation must not contain an embedded NUL
// byte; that is a programming error and panics before the native call.
package tinydialogs
