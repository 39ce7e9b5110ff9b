package script

import (
	"fmt"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

type enumCodec struct {
	parse  func(string) (any, error)
	lookup func(id any) (any, error)
}

func codec[ID comparable, E com.Enum[ID]](t *com.EnumTable[ID, E]) enumCodec {
	return enumCodec{
		parse: func(s string) (any, error) { return t.Parse(s) },
		lookup: func(id any) (any, error) {
			v, ok := id.(ID)
			if !ok {
				return nil, &com.UnknownEnumIdentifierError{Enum: t.Name(), ID: id}
			}
			return t.Lookup(v)
		},
	}
}

var codecs = func() map[string]enumCodec {
	m := map[string]enumCodec{}
	for _, c := range []struct {
		name  string
		codec enumCodec
	}{
		{enums.UnitsTable.Name(), codec(enums.UnitsTable)},
		{enums.MatTypeTable.Name(), codec(enums.MatTypeTable)},
		{enums.WeightOrMassTable.Name(), codec(enums.WeightOrMassTable)},
		{enums.DirTable.Name(), codec(enums.DirTable)},
		{enums.LoadPatternTypeTable.Name(), codec(enums.LoadPatternTypeTable)},
		{enums.DistributedLoadTypeTable.Name(), codec(enums.DistributedLoadTypeTable)},
		{enums.PointLoadTypeTable.Name(), codec(enums.PointLoadTypeTable)},
		{enums.ComboTypeTable.Name(), codec(enums.ComboTypeTable)},
		{enums.CTypeTable.Name(), codec(enums.CTypeTable)},
		{enums.ItemTypeTable.Name(), codec(enums.ItemTypeTable)},
		{enums.E2DFrameTypeTable.Name(), codec(enums.E2DFrameTypeTable)},
		{enums.LoadCaseTypeTable.Name(), codec(enums.LoadCaseTypeTable)},
		{enums.LoadTypeTable.Name(), codec(enums.LoadTypeTable)},
		{enums.SolverTypeTable.Name(), codec(enums.SolverTypeTable)},
	} {
		m[c.name] = c.codec
	}
	return m
}()

func enumCodecFor(name string) (enumCodec, error) {
	c, ok := codecs[name]
	if !ok {
		return enumCodec{}, fmt.Errorf("unknown enumeration %q", name)
	}
	return c, nil
}
