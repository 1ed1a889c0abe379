// Package native implements tinydialogs.Provider on top of the
// vendored tinyfiledialogs C library. Build the static archive first
// (see the Makefile at the repository root); on Windows the link
// additionally pulls in the common-dialog, common-controls and COM
// system libraries.
package native

/*
#cgo CFLAGS: -I${SRCDIR}/../libtinyfiledialogs
#cgo LDFLAGS: -L${SRCDIR}/../libtinyfiledialogs -ltinyfiledialogs
#cgo windows LDFLAGS: -lcomdlg32 -lcomctl32 -lole32 -luser32

#include <stdlib.h>
#include "tinyfiledialogs.h"
*/
import "C"

import "unsafe"

// Provider is the cgo-backed dialog provider. It is stateless; the
// zero value is ready to use.
type Provider struct{}

// MessageBox calls tinyfd_messageBox and returns the raw button code.
func (Provider) MessageBox(title, message, kind, icon string, defaultButton int) int {
	cTitle := C.CString(title)
	cMessage := C.CString(message)
	cKind := C.CString(kind)
	cIcon := C.CString(icon)
	defer C.free(unsafe.Pointer(cTitle))
	defer C.free(unsafe.Pointer(cMessage))
	defer C.free(unsafe.Pointer(cKind))
	defer C.free(unsafe.Pointer(cIcon))

	return int(C.tinyfd_messageBox(cTitle, cMessage, cKind, cIcon, C.int(defaultButton)))
}

// InputBox calls tinyfd_inputBox. A nil defaultText becomes NULL,
// which makes the native box a masked password prompt.
func (Provider) InputBox(title, message string, defaultText *string) (string, bool) {
	cTitle := C.CString(title)
	cMessage := C.CString(message)
	defer C.free(unsafe.Pointer(cTitle))
	defer C.free(unsafe.Pointer(cMessage))

	var cDefault *C.char
	if defaultText != nil {
		cDefault = C.CString(*defaultText)
		defer C.free(unsafe.Pointer(cDefault))
	}

	return goResult(C.tinyfd_inputBox(cTitle, cMessage, cDefault))
}

// SaveFileDialog calls tinyfd_saveFileDialog.
func (Provider) SaveFileDialog(title, path string, patterns []string, description string) (string, bool) {
	cTitle := C.CString(title)
	cPath := C.CString(path)
	cDescription := C.CString(description)
	defer C.free(unsafe.Pointer(cTitle))
	defer C.free(unsafe.Pointer(cPath))
	defer C.free(unsafe.Pointer(cDescription))

	cPatterns := make([]*C.char, len(patterns))
	for i, p := range patterns {
		cPatterns[i] = C.CString(p)
		defer C.free(unsafe.Pointer(cPatterns[i]))
	}

	return goResult(C.tinyfd_saveFileDialog(
		cTitle, cPath, C.int(len(cPatterns)), vecPtr(cPatterns), cDescription))
}

// OpenFileDialog calls tinyfd_openFileDialog. With multi set, the
// native result joins all selected paths with '|'; it is returned raw.
func (Provider) OpenFileDialog(title, path string, patterns []string, description string, multi bool) (string, bool) {
	cTitle := C.CString(title)
	cPath := C.CString(path)
	cDescription := C.CString(description)
	defer C.free(unsafe.Pointer(cTitle))
	defer C.free(unsafe.Pointer(cPath))
	defer C.free(unsafe.Pointer(cDescription))

	cPatterns := make([]*C.char, len(patterns))
	for i, p := range patterns {
		cPatterns[i] = C.CString(p)
		defer C.free(unsafe.Pointer(cPatterns[i]))
	}

	cMulti := C.int(0)
	if multi {
		cMulti = C.int(1)
	}

	return goResult(C.tinyfd_openFileDialog(
		cTitle, cPath, C.int(len(cPatterns)), vecPtr(cPatterns), cDescription, cMulti))
}

// SelectFolderDialog calls tinyfd_selectFolderDialog.
func (Provider) SelectFolderDialog(title, path string) (string, bool) {
	cTitle := C.CString(title)
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cTitle))
	defer C.free(unsafe.Pointer(cPath))

	return goResult(C.tinyfd_selectFolderDialog(cTitle, cPath))
}

// ColorChooser calls tinyfd_colorChooser. When defaultHex is non-nil
// the native side ignores the RGB default slot.
func (Provider) ColorChooser(title string, defaultHex *string, defaultRGB [3]byte) (string, [3]byte, bool) {
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))

	var cHex *C.char
	if defaultHex != nil {
		cHex = C.CString(*defaultHex)
		defer C.free(unsafe.Pointer(cHex))
	}

	def := [3]C.uchar{C.uchar(defaultRGB[0]), C.uchar(defaultRGB[1]), C.uchar(defaultRGB[2])}
	var out [3]C.uchar

	res := C.tinyfd_colorChooser(cTitle, cHex, &def[0], &out[0])
	if res == nil {
		return "", [3]byte{}, false
	}
	return C.GoString(res), [3]byte{byte(out[0]), byte(out[1]), byte(out[2])}, true
}

// goResult copies a native result string into Go-owned memory. The
// library answers out of a static buffer that the next call
// overwrites, so the copy must happen before anything else runs.
func goResult(p *C.char) (string, bool) {
	if p == nil {
		return "", false
	}
	return C.GoString(p), true
}

// vecPtr returns the C view of a string vector, or NULL for an empty
// one. The backing array holds only C pointers, so handing its address
// to C is within the cgo pointer rules.
func vecPtr(vec []*C.char) **C.char {
	if len(vec) == 0 {
		return nil
	}
	return (**C.char)(unsafe.Pointer(&vec[0]))
}
