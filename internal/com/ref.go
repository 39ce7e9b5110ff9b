package com

import "fmt"

// Elem is the set of element types a reference can carry.
type Elem interface {
	int | float64 | bool | string
}

// ScalarRef is a single mutable cell passed by reference. The marshaler
// overwrites it with the value the external application reports.
//
// A nil *ScalarRef is accepted as an argument and means the output is not
// wanted: a zero value is sent and nothing is written back.
type ScalarRef[T Elem] struct {
	v T
}

type (
	IntRef    = ScalarRef[int]
	DoubleRef = ScalarRef[float64]
	BoolRef   = ScalarRef[bool]
	StringRef = ScalarRef[string]
)

// NewRef returns a cell holding v.
func NewRef[T Elem](v T) *ScalarRef[T] {
	return &ScalarRef[T]{v: v}
}

// Get returns the held value, or the zero value for a nil ref.
func (r *ScalarRef[T]) Get() T {
	if r == nil {
		var zero T
		return zero
	}
	return r.v
}

func (r *ScalarRef[T]) Set(v T) { r.v = v }

func (r *ScalarRef[T]) String() string { return fmt.Sprint(r.Get()) }

// ArrayRef is a fixed-length, zero-based array passed by reference. Its
// length never changes after construction.
type ArrayRef[T Elem] struct {
	vals []T
}

// NewArrayRef returns an ArrayRef of n zero values.
func NewArrayRef[T Elem](n int) *ArrayRef[T] {
	if n < 0 {
		panic(fmt.Sprintf("com: negative ArrayRef length %d", n))
	}
	return &ArrayRef[T]{vals: make([]T, n)}
}

// ArrayRefOf returns an ArrayRef holding a copy of values.
func ArrayRefOf[T Elem](values ...T) *ArrayRef[T] {
	vals := make([]T, len(values))
	copy(vals, values)
	return &ArrayRef[T]{vals: vals}
}

// Len is 0 for a nil ArrayRef.
func (a *ArrayRef[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.vals)
}

func (a *ArrayRef[T]) At(i int) T {
	a.check(i)
	return a.vals[i]
}

func (a *ArrayRef[T]) Set(i int, v T) {
	a.check(i)
	a.vals[i] = v
}

// Values returns a copy of the elements.
func (a *ArrayRef[T]) Values() []T {
	out := make([]T, a.Len())
	if a != nil {
		copy(out, a.vals)
	}
	return out
}

func (a *ArrayRef[T]) String() string { return fmt.Sprint(a.Values()) }

func (a *ArrayRef[T]) check(i int) {
	if i < 0 || i >= a.Len() {
		panic(fmt.Sprintf("com: ArrayRef index %d out of range [0:%d)", i, a.Len()))
	}
}

// refKind names the reference type in error messages, e.g. "ArrayRef[int]".
func (a *ArrayRef[T]) refKind() string { return "ArrayRef[" + elemName[T]() + "]" }

func (r *ScalarRef[T]) refKind() string { return "ScalarRef[" + elemName[T]() + "]" }

type kinded interface {
	refKind() string
}

func elemName[T Elem]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	default:
		return "string"
	}
}

func elemTag[T Elem]() VarType {
	var zero T
	switch any(zero).(type) {
	case int:
		return VTI4
	case float64:
		return VTR8
	case bool:
		return VTBool
	default:
		return VTBSTR
	}
}

// cell encodes r as a by-reference Variant seeded with its current value.
// It fails for an int that does not fit 32 bits.
func (r *ScalarRef[T]) cell() (*Variant, error) {
	vt, val, err := tagOf(r.Get())
	if err != nil {
		return nil, err
	}
	return &Variant{VT: vt | VTByRef, Val: val}, nil
}

// load copies the value held by c into r. It reports false when c does not
// hold a T.
func (r *ScalarRef[T]) load(c *Variant) bool {
	if c == nil || c.VT.IsArray() || c.VT.Base() != elemTag[T]() {
		return false
	}
	val := c.Val
	if i, ok := val.(int32); ok {
		val = int(i)
	}
	v, ok := val.(T)
	if !ok {
		return false
	}
	r.v = v
	return true
}
