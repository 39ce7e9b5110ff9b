// Package script drives facade operations from text: argument lists typed
// on the command line and YAML step files.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/schema"
)

// ErrArgCount reports a text argument list that does not fit the operation.
var ErrArgCount = errors.New("wrong number of arguments")

// Args converts raw into the arguments of op. Missing trailing output
// parameters are created empty; a missing input is an error. Array
// parameters take a comma separated list, and an empty array argument
// allocates the declared length.
func Args(op *schema.Op, raw []string) ([]any, error) {
	if len(raw) > len(op.Params) {
		return nil, fmt.Errorf("%s: %w: got %d, want at most %d", op.Name, ErrArgCount, len(raw), len(op.Params))
	}
	args := make([]any, len(op.Params))
	for i, p := range op.Params {
		s, given := "", i < len(raw)
		if given {
			s = raw[i]
		} else if !p.Output() {
			return nil, fmt.Errorf("%s: %w: missing %s", op.Name, ErrArgCount, p.Name)
		}
		a, err := arg(p, s)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %s: %w", op.Name, p.Name, err)
		}
		args[i] = a
	}
	return args, nil
}

func arg(p schema.Param, s string) (any, error) {
	kind, elem := p.Kind()
	switch kind {
	case schema.KindEnum:
		c, err := enumCodecFor(elem)
		if err != nil {
			return nil, err
		}
		return c.parse(s)
	case schema.KindRef:
		return ref(elem, s)
	case schema.KindArray:
		return array(elem, s, p.Len)
	}
	return scalar(kind, s)
}

func scalar(kind, s string) (any, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case schema.KindInt:
		return strconv.Atoi(s)
	case schema.KindDouble:
		return strconv.ParseFloat(s, 64)
	case schema.KindBool:
		return strconv.ParseBool(s)
	case schema.KindString:
		return s, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

// ref creates a reference holding s, or the zero value when s is empty.
func ref(elem, s string) (any, error) {
	if elem != schema.KindString && strings.TrimSpace(s) == "" {
		switch elem {
		case schema.KindInt:
			return com.NewRef(0), nil
		case schema.KindDouble:
			return com.NewRef(0.0), nil
		case schema.KindBool:
			return com.NewRef(false), nil
		}
	}
	v, err := scalar(elem, s)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case int:
		return com.NewRef(v), nil
	case float64:
		return com.NewRef(v), nil
	case bool:
		return com.NewRef(v), nil
	case string:
		return com.NewRef(v), nil
	}
	return nil, fmt.Errorf("unknown reference type %q", elem)
}

func array(elem, s string, n int) (any, error) {
	var fields []string
	if strings.TrimSpace(s) != "" {
		fields = strings.Split(s, ",")
	}
	switch elem {
	case schema.KindDouble:
		return arrayOf(fields, n, func(f string) (float64, error) { return strconv.ParseFloat(f, 64) })
	case schema.KindBool:
		return arrayOf(fields, n, strconv.ParseBool)
	case schema.KindInt:
		return arrayOf(fields, n, strconv.Atoi)
	case schema.KindString:
		return arrayOf(fields, n, func(f string) (string, error) { return f, nil })
	}
	return nil, fmt.Errorf("unknown array type %q", elem)
}

func arrayOf[T com.Elem](fields []string, n int, conv func(string) (T, error)) (*com.ArrayRef[T], error) {
	if len(fields) == 0 {
		return com.NewArrayRef[T](n), nil
	}
	if n > 0 && len(fields) != n {
		return nil, fmt.Errorf("%w: %d elements, want %d", ErrArgCount, len(fields), n)
	}
	vals := make([]T, len(fields))
	for i, f := range fields {
		v, err := conv(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		vals[i] = v
	}
	return com.ArrayRefOf(vals...), nil
}

// Outputs collects the values the call wrote into the output parameters of
// op, keyed by parameter name.
func Outputs(op *schema.Op, args []any) map[string]any {
	out := map[string]any{}
	for i, p := range op.Params {
		if !p.Output() || i >= len(args) {
			continue
		}
		switch a := args[i].(type) {
		case *com.IntRef:
			out[p.Name] = a.Get()
		case *com.DoubleRef:
			out[p.Name] = a.Get()
		case *com.BoolRef:
			out[p.Name] = a.Get()
		case *com.StringRef:
			out[p.Name] = a.Get()
		case *com.ArrayRef[float64]:
			out[p.Name] = a.Values()
		case *com.ArrayRef[bool]:
			out[p.Name] = a.Values()
		case *com.ArrayRef[int]:
			out[p.Name] = a.Values()
		case *com.ArrayRef[string]:
			out[p.Name] = a.Values()
		}
	}
	return out
}

// Result converts the value returned by op to its declared type. Enumerated
// results become their members.
func Result(op *schema.Op, res com.Result) (any, error) {
	kind, elem, _ := strings.Cut(op.ResultType(), ":")
	switch kind {
	case schema.KindInt, schema.KindCount:
		return res.AsInt()
	case schema.KindDouble:
		return res.AsDouble()
	case schema.KindBool:
		return res.AsBool()
	case schema.KindString:
		return res.AsString()
	case schema.KindEnum:
		c, err := enumCodecFor(elem)
		if err != nil {
			return nil, err
		}
		if id, err := res.AsInt(); err == nil {
			return c.lookup(id)
		}
		id, err := res.AsString()
		if err != nil {
			return nil, err
		}
		return c.lookup(id)
	}
	return nil, fmt.Errorf("unknown result type %q", op.ResultType())
}
