package com

import (
	"fmt"
	"math"
	"strings"
)

// VarType is the type tag of a Variant. The values match OLE VARTYPE so
// adapters can pass them through unchanged.
type VarType uint16

const (
	VTEmpty VarType = 0
	VTI4    VarType = 3
	VTR8    VarType = 5
	VTBSTR  VarType = 8
	VTBool  VarType = 11
	VTArray VarType = 0x2000
	VTByRef VarType = 0x4000
)

// Base strips the array and by-reference flags.
func (t VarType) Base() VarType { return t &^ (VTArray | VTByRef) }

func (t VarType) IsArray() bool { return t&VTArray != 0 }

func (t VarType) IsByRef() bool { return t&VTByRef != 0 }

func (t VarType) String() string {
	var name string
	switch t.Base() {
	case VTEmpty:
		name = "VT_EMPTY"
	case VTI4:
		name = "VT_I4"
	case VTR8:
		name = "VT_R8"
	case VTBSTR:
		name = "VT_BSTR"
	case VTBool:
		name = "VT_BOOL"
	default:
		name = fmt.Sprintf("VT(%d)", uint16(t.Base()))
	}
	parts := []string{name}
	if t.IsArray() {
		parts = append(parts, "VT_ARRAY")
	}
	if t.IsByRef() {
		parts = append(parts, "VT_BYREF")
	}
	return strings.Join(parts, "|")
}

// Variant is the representation arguments and results take on their way to
// and from the external application. Scalars are held as int32, float64,
// bool or string; arrays as []float64.
type Variant struct {
	VT  VarType
	Val any
}

// NewVariant tags x. Go ints are narrowed to int32.
func NewVariant(x any, byRef bool) (*Variant, error) {
	vt, val, err := tagOf(x)
	if err != nil {
		return nil, err
	}
	if byRef {
		vt |= VTByRef
	}
	return &Variant{VT: vt, Val: val}, nil
}

// Put replaces the held value, keeping the by-reference flag.
func (v *Variant) Put(x any) error {
	vt, val, err := tagOf(x)
	if err != nil {
		return err
	}
	v.VT = vt | (v.VT & VTByRef)
	v.Val = val
	return nil
}

// Clone returns a deep copy; array storage is not shared.
func (v *Variant) Clone() *Variant {
	if v == nil {
		return nil
	}
	c := &Variant{VT: v.VT, Val: v.Val}
	if xs, ok := v.Val.([]float64); ok {
		c.Val = append([]float64(nil), xs...)
	}
	return c
}

func (v *Variant) Int() (int, bool) {
	if v == nil || v.VT.IsArray() || v.VT.Base() != VTI4 {
		return 0, false
	}
	x, ok := v.Val.(int32)
	return int(x), ok
}

func (v *Variant) Double() (float64, bool) {
	if v == nil || v.VT.IsArray() || v.VT.Base() != VTR8 {
		return 0, false
	}
	x, ok := v.Val.(float64)
	return x, ok
}

func (v *Variant) Bool() (bool, bool) {
	if v == nil || v.VT.IsArray() || v.VT.Base() != VTBool {
		return false, false
	}
	x, ok := v.Val.(bool)
	return x, ok
}

func (v *Variant) Str() (string, bool) {
	if v == nil || v.VT.IsArray() || v.VT.Base() != VTBSTR {
		return "", false
	}
	x, ok := v.Val.(string)
	return x, ok
}

// Doubles returns the held double array without copying it.
func (v *Variant) Doubles() ([]float64, bool) {
	if v == nil || !v.VT.IsArray() || v.VT.Base() != VTR8 {
		return nil, false
	}
	xs, ok := v.Val.([]float64)
	return xs, ok
}

func (v *Variant) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v(%s)", v.Val, v.VT)
}

func tagOf(x any) (VarType, any, error) {
	switch x := x.(type) {
	case nil:
		return VTEmpty, nil, nil
	case int:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return 0, nil, fmt.Errorf("%w: %d overflows a 32-bit integer", ErrUnsupportedValue, x)
		}
		return VTI4, int32(x), nil
	case int16:
		return VTI4, int32(x), nil
	case int32:
		return VTI4, x, nil
	case int64:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return 0, nil, fmt.Errorf("%w: %d overflows a 32-bit integer", ErrUnsupportedValue, x)
		}
		return VTI4, int32(x), nil
	case float32:
		return VTR8, float64(x), nil
	case float64:
		return VTR8, x, nil
	case bool:
		return VTBool, x, nil
	case string:
		return VTBSTR, x, nil
	case []float64:
		return VTArray | VTR8, append([]float64(nil), x...), nil
	case []any:
		xs := make([]float64, len(x))
		for i, e := range x {
			f, ok := e.(float64)
			if !ok {
				return 0, nil, fmt.Errorf("%w: array element %d is %T, want float64", ErrUnsupportedValue, i, e)
			}
			xs[i] = f
		}
		return VTArray | VTR8, xs, nil
	}
	return 0, nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
}
