package com

import (
	"fmt"
)

// Dispatcher invokes named operations on one external automation object.
// Arguments arrive already encoded: primitives, enumeration identifiers and
// *Variant cells for by-reference parameters. Implementations write
// by-reference outputs into those cells before returning.
type Dispatcher interface {
	Invoke(op string, args []any) (Result, error)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(op string, args []any) (Result, error)

func (f DispatcherFunc) Invoke(op string, args []any) (Result, error) { return f(op, args) }

// Connector resolves external object names such as "Sap2000.cPropMaterial".
type Connector interface {
	Connect(name string) (Dispatcher, error)
}

// ConnectorFunc adapts a function to Connector.
type ConnectorFunc func(name string) (Dispatcher, error)

func (f ConnectorFunc) Connect(name string) (Dispatcher, error) { return f(name) }

// Target is a bound external object. It is immutable once created.
type Target struct {
	name string
	d    Dispatcher
}

// NewTarget wraps an already resolved dispatcher.
func NewTarget(name string, d Dispatcher) *Target {
	return &Target{name: name, d: d}
}

// Bind resolves name through c.
func Bind(c Connector, name string) (*Target, error) {
	d, err := c.Connect(name)
	if err != nil {
		return nil, &ExternalCallError{Target: name, Op: "Connect", Err: err}
	}
	return NewTarget(name, d), nil
}

func (t *Target) Name() string { return t.name }

// Call runs op through the argument marshaler.
func (t *Target) Call(op string, args ...any) (Result, error) {
	return call(t.name, t.d, op, args)
}

// CallInt runs op and reads its result as an integer, typically a status
// code where 0 means success.
func (t *Target) CallInt(op string, args ...any) (int, error) {
	res, err := t.Call(op, args...)
	if err != nil {
		return 0, err
	}
	return res.AsInt()
}

func (t *Target) CallDouble(op string, args ...any) (float64, error) {
	res, err := t.Call(op, args...)
	if err != nil {
		return 0, err
	}
	return res.AsDouble()
}

func (t *Target) CallBool(op string, args ...any) (bool, error) {
	res, err := t.Call(op, args...)
	if err != nil {
		return false, err
	}
	return res.AsBool()
}

func (t *Target) CallString(op string, args ...any) (string, error) {
	res, err := t.Call(op, args...)
	if err != nil {
		return "", err
	}
	return res.AsString()
}

// CallEnum runs op on t and resolves its integer result in table.
func CallEnum[E Enum[int]](t *Target, table *EnumTable[int, E], op string, args ...any) (E, error) {
	id, err := t.CallInt(op, args...)
	if err != nil {
		var zero E
		return zero, err
	}
	return table.Lookup(id)
}

// Result is the value an operation returned.
type Result struct {
	op string
	v  Variant
}

// NewResult tags x as the result of op. Dispatchers use it to hand back
// whatever the external application returned.
func NewResult(op string, x any) (Result, error) {
	vt, val, err := tagOf(x)
	if err != nil {
		return Result{}, &ExternalCallError{Op: op, Err: err}
	}
	return Result{op: op, v: Variant{VT: vt, Val: val}}, nil
}

// MustResult is NewResult for values known to be representable.
func MustResult(op string, x any) Result {
	r, err := NewResult(op, x)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Result) Op() string { return r.op }

func (r Result) Type() VarType { return r.v.VT }

// Value returns the raw held value.
func (r Result) Value() any { return r.v.Val }

func (r Result) AsInt() (int, error) {
	if x, ok := r.v.Int(); ok {
		return x, nil
	}
	return 0, r.mismatch("integer")
}

// AsDouble also accepts an integer result.
func (r Result) AsDouble() (float64, error) {
	if x, ok := r.v.Double(); ok {
		return x, nil
	}
	if x, ok := r.v.Int(); ok {
		return float64(x), nil
	}
	return 0, r.mismatch("double")
}

func (r Result) AsBool() (bool, error) {
	if x, ok := r.v.Bool(); ok {
		return x, nil
	}
	return false, r.mismatch("boolean")
}

func (r Result) AsString() (string, error) {
	if x, ok := r.v.Str(); ok {
		return x, nil
	}
	return "", r.mismatch("string")
}

func (r Result) String() string { return fmt.Sprint(r.v.Val) }

func (r Result) mismatch(want string) error {
	return &ExternalCallError{Op: r.op, Err: fmt.Errorf("result is %s, not %s", r.v.VT, want)}
}
