//go:build !windows

package native

/*
#cgo CFLAGS: -I${SRCDIR}/../libtinyfiledialogs
#include <stdlib.h>
#include "tinyfiledialogs.h"
*/
import "C"

import "unsafe"

// ListDialog calls tinyfd_arrayDialog. rows is the precomputed native
// row count, len(cells) / len(columns).
func (Provider) ListDialog(title string, columns []string, rows int, cells []string) (string, bool) {
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))

	cColumns := make([]*C.char, len(columns))
	for i, col := range columns {
		cColumns[i] = C.CString(col)
		defer C.free(unsafe.Pointer(cColumns[i]))
	}

	cCells := make([]*C.char, len(cells))
	for i, cell := range cells {
		cCells[i] = C.CString(cell)
		defer C.free(unsafe.Pointer(cCells[i]))
	}

	var colPtr, cellPtr **C.char
	if len(cColumns) > 0 {
		colPtr = (**C.char)(unsafe.Pointer(&cColumns[0]))
	}
	if len(cCells) > 0 {
		cellPtr = (**C.char)(unsafe.Pointer(&cCells[0]))
	}

	res := C.tinyfd_arrayDialog(cTitle, C.int(len(columns)), colPtr, C.int(rows), cellPtr)
	if res == nil {
		return "", false
	}
	return C.GoString(res), true
}

// SupportsListDialog reports true everywhere except Windows.
func (Provider) SupportsListDialog() bool { return true }
