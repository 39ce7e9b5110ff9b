package com

// Call runs op on d through the two-pass argument marshaler:
//
//  1. every argument is encoded in order; references become *Variant cells,
//     enumeration members become their external identifiers and everything
//     else passes through untouched;
//  2. d is invoked with the encoded list;
//  3. every reference argument is overwritten with the value its cell holds.
//
// The result is returned as is; status codes are not interpreted here.
func Call(d Dispatcher, op string, args ...any) (Result, error) {
	return call("", d, op, args)
}

func call(target string, d Dispatcher, op string, args []any) (Result, error) {
	enc, err := encode(op, args)
	if err != nil {
		return Result{}, err
	}
	res, err := d.Invoke(op, enc)
	if err != nil {
		return Result{}, externalError(target, op, err)
	}
	if err := decode(op, args, enc); err != nil {
		return Result{}, err
	}
	return res, nil
}

func encode(op string, args []any) ([]any, error) {
	enc := make([]any, len(args))
	for i, a := range args {
		var err error
		switch a := a.(type) {
		case *ScalarRef[int]:
			enc[i], err = a.cell()
		case *ScalarRef[float64]:
			enc[i], err = a.cell()
		case *ScalarRef[bool]:
			enc[i], err = a.cell()
		case *ScalarRef[string]:
			enc[i], err = a.cell()
		case *ArrayRef[float64]:
			enc[i] = &Variant{VT: VTArray | VTR8 | VTByRef, Val: a.Values()}
		case kinded:
			// ArrayRef of int, bool or string.
			return nil, &UnsupportedRefTypeError{Op: op, Index: i, Kind: a.refKind()}
		case IntEnum:
			enc[i] = a.SapID()
		case StringEnum:
			enc[i] = a.SapID()
		default:
			enc[i] = a
		}
		if err != nil {
			return nil, &ValueError{Op: op, Index: i, Err: err}
		}
	}
	return enc, nil
}

func decode(op string, args, enc []any) error {
	for i, a := range args {
		var err error
		switch a := a.(type) {
		case *ScalarRef[int]:
			err = loadScalar(op, i, a, enc[i])
		case *ScalarRef[float64]:
			err = loadScalar(op, i, a, enc[i])
		case *ScalarRef[bool]:
			err = loadScalar(op, i, a, enc[i])
		case *ScalarRef[string]:
			err = loadScalar(op, i, a, enc[i])
		case *ArrayRef[float64]:
			err = loadDoubles(op, i, a, enc[i])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func loadScalar[T Elem](op string, i int, r *ScalarRef[T], e any) error {
	if r == nil {
		return nil
	}
	c, _ := e.(*Variant)
	if !r.load(c) {
		found := VTEmpty
		if c != nil {
			found = c.VT
		}
		return &UnsupportedRefTypeError{Op: op, Index: i, Kind: r.refKind(), Found: found}
	}
	return nil
}

func loadDoubles(op string, i int, a *ArrayRef[float64], e any) error {
	if a == nil {
		return nil
	}
	c, _ := e.(*Variant)
	xs, ok := c.Doubles()
	if !ok {
		found := VTEmpty
		if c != nil {
			found = c.VT
		}
		return &UnsupportedRefTypeError{Op: op, Index: i, Kind: a.refKind(), Found: found}
	}
	if len(xs) < a.Len() {
		return &ArityMismatchError{Op: op, Index: i, Want: a.Len(), Got: len(xs)}
	}
	copy(a.vals, xs[:a.Len()])
	return nil
}
