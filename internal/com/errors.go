package com

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to one of these.
var (
	ErrExternalCall          = errors.New("external call failed")
	ErrUnsupportedRefType    = errors.New("unsupported reference type")
	ErrArityMismatch         = errors.New("array length mismatch")
	ErrUnknownEnumIdentifier = errors.New("unknown enumeration identifier")
	ErrUnsupportedValue      = errors.New("unsupported variant value")
	ErrCallTimeout           = errors.New("external call timed out")
)

// ExternalCallError reports a failure raised by the dispatch mechanism or
// the external application while running one operation.
type ExternalCallError struct {
	Target string // automation object name, may be empty
	Op     string // operation name
	Err    error  // underlying failure
}

func (e *ExternalCallError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s.%s: %v", e.Target, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalCallError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExternalCall}
	}
	return []error{ErrExternalCall, e.Err}
}

// UnsupportedRefTypeError reports a by-reference argument the marshaler
// cannot encode, or a by-reference cell that came back holding a value of
// the wrong representation.
type UnsupportedRefTypeError struct {
	Op    string
	Index int     // position of the argument in the call
	Kind  string  // e.g. "ArrayRef[bool]"
	Found VarType // representation found on decode, VTEmpty on encode
}

func (e *UnsupportedRefTypeError) Error() string {
	if e.Found != VTEmpty {
		return fmt.Sprintf("%s: argument %d: %s cannot hold external value of type %s", e.Op, e.Index, e.Kind, e.Found)
	}
	return fmt.Sprintf("%s: argument %d: %s is not supported", e.Op, e.Index, e.Kind)
}

func (e *UnsupportedRefTypeError) Unwrap() error {
	return ErrUnsupportedRefType
}

// ArityMismatchError reports an external array shorter than the ArrayRef
// that was supposed to receive it.
type ArityMismatchError struct {
	Op    string
	Index int
	Want  int // length of the caller's ArrayRef
	Got   int // length of the external array
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: argument %d: external array has %d elements, want at least %d", e.Op, e.Index, e.Got, e.Want)
}

func (e *ArityMismatchError) Unwrap() error {
	return ErrArityMismatch
}

// ValueError reports an argument whose value has no external
// representation, such as an int beyond 32 bits.
type ValueError struct {
	Op    string
	Index int
	Err   error // wraps ErrUnsupportedValue
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: argument %d: %v", e.Op, e.Index, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// UnknownEnumIdentifierError reports an external identifier, or a symbolic
// name, that matches no member of an enumeration.
type UnknownEnumIdentifierError struct {
	Enum string
	ID   any
}

func (e *UnknownEnumIdentifierError) Error() string {
	return fmt.Sprintf("%s with identifier %v does not exist", e.Enum, e.ID)
}

func (e *UnknownEnumIdentifierError) Unwrap() error {
	return ErrUnknownEnumIdentifier
}

// externalError wraps err as an ExternalCallError unless it already is one.
func externalError(target, op string, err error) error {
	var ext *ExternalCallError
	if errors.As(err, &ext) {
		return err
	}
	return &ExternalCallError{Target: target, Op: op, Err: err}
}
