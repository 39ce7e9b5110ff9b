package ole

import (
	"fmt"
	"math"
	"unsafe"

	goole "github.com/go-ole/go-ole"

	"github.com/alexiusacademia/gosap/internal/com"
)

// binding holds the go-ole parameters for one invocation and knows how to
// copy by-reference outputs back into the encoded cells.
type binding struct {
	params  []any
	readers []func() error
	cells   []*goole.VARIANT
}

// bindArgs converts encoded arguments into go-ole parameters. Integer and
// double references travel as typed pointers; boolean, string and array
// references travel inside VARIANT cells.
func bindArgs(args []any) (*binding, error) {
	b := &binding{params: make([]any, len(args))}
	for i, a := range args {
		cell, ok := a.(*com.Variant)
		if !ok {
			p, err := plainParam(a)
			if err != nil {
				b.clear()
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			b.params[i] = p
			continue
		}
		if err := b.bindCell(i, cell); err != nil {
			b.clear()
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return b, nil
}

func plainParam(a any) (any, error) {
	switch a := a.(type) {
	case nil, int32, float64, bool, string:
		return a, nil
	case int:
		if a < math.MinInt32 || a > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d overflows a 32-bit integer", com.ErrUnsupportedValue, a)
		}
		return int32(a), nil
	case float32:
		return float64(a), nil
	}
	return nil, fmt.Errorf("%w: %T", com.ErrUnsupportedValue, a)
}

func (b *binding) bindCell(i int, cell *com.Variant) error {
	switch {
	case cell.VT.IsArray() && cell.VT.Base() == com.VTR8:
		xs, _ := cell.Doubles()
		sa, err := doubleArray(xs)
		if err != nil {
			return err
		}
		v := goole.NewVariant(goole.VT_ARRAY|goole.VT_R8, int64(uintptr(unsafe.Pointer(sa))))
		b.addCell(i, &v, cell, func(v *goole.VARIANT) (any, error) {
			conv := v.ToArray()
			if conv == nil {
				return nil, nil
			}
			return conv.ToValueArray(), nil
		})

	case cell.VT.Base() == com.VTI4:
		n, _ := cell.Int()
		p := new(int32)
		*p = int32(n)
		b.params[i] = p
		b.readers = append(b.readers, func() error { return cell.Put(*p) })

	case cell.VT.Base() == com.VTR8:
		x, _ := cell.Double()
		p := new(float64)
		*p = x
		b.params[i] = p
		b.readers = append(b.readers, func() error { return cell.Put(*p) })

	case cell.VT.Base() == com.VTBool:
		x, _ := cell.Bool()
		var raw int64
		if x {
			raw = -1
		}
		v := goole.NewVariant(goole.VT_BOOL, raw)
		b.addCell(i, &v, cell, scalarValue)

	case cell.VT.Base() == com.VTBSTR:
		s, _ := cell.Str()
		bstr := goole.SysAllocString(s)
		v := goole.NewVariant(goole.VT_BSTR, int64(uintptr(unsafe.Pointer(bstr))))
		b.addCell(i, &v, cell, scalarValue)

	default:
		return fmt.Errorf("%w: cell of type %s", com.ErrUnsupportedValue, cell.VT)
	}
	return nil
}

func (b *binding) addCell(i int, v *goole.VARIANT, cell *com.Variant, read func(*goole.VARIANT) (any, error)) {
	b.params[i] = v
	b.cells = append(b.cells, v)
	b.readers = append(b.readers, func() error {
		x, err := read(v)
		if err != nil {
			return err
		}
		return cell.Put(x)
	})
}

func scalarValue(v *goole.VARIANT) (any, error) {
	return v.Value(), nil
}

// readBack copies every by-reference output into its encoded cell.
func (b *binding) readBack() error {
	for _, read := range b.readers {
		if err := read(); err != nil {
			return err
		}
	}
	return nil
}

// clear frees the VARIANT cells and whatever they own.
func (b *binding) clear() {
	for _, v := range b.cells {
		_ = goole.VariantClear(v)
	}
	b.cells = nil
}
