//go:build windows

package ole

import (
	"fmt"
	"unsafe"

	goole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	modoleaut32               = windows.NewLazySystemDLL("oleaut32.dll")
	procSafeArrayCreateVector = modoleaut32.NewProc("SafeArrayCreateVector")
	procSafeArrayPutElement   = modoleaut32.NewProc("SafeArrayPutElement")
	procSafeArrayDestroy      = modoleaut32.NewProc("SafeArrayDestroy")
)

// doubleArray builds a one-dimensional, zero-based SAFEARRAY of VT_R8.
func doubleArray(xs []float64) (*goole.SafeArray, error) {
	psa, _, err := procSafeArrayCreateVector.Call(uintptr(goole.VT_R8), 0, uintptr(len(xs)))
	if psa == 0 {
		return nil, fmt.Errorf("SafeArrayCreateVector: %w", err)
	}
	for i := range xs {
		idx := int32(i)
		hr, _, _ := procSafeArrayPutElement.Call(psa, uintptr(unsafe.Pointer(&idx)), uintptr(unsafe.Pointer(&xs[i])))
		if hr != 0 {
			procSafeArrayDestroy.Call(psa)
			return nil, goole.NewError(hr)
		}
	}
	return (*goole.SafeArray)(unsafe.Pointer(psa)), nil
}
