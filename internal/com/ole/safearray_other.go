//go:build !windows

package ole

import (
	goole "github.com/go-ole/go-ole"
)

func doubleArray([]float64) (*goole.SafeArray, error) {
	return nil, goole.NewError(goole.E_NOTIMPL)
}
