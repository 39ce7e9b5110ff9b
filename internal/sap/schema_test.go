package sap_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/schema"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// capabilities maps each schema facade to its v14 and v15 interfaces.
var capabilities = map[string][2]reflect.Type{
	"SapObject":        {typeOf[sap.SapObjectV14](), typeOf[sap.SapObjectV15]()},
	"SapModel":         {typeOf[sap.SapModelV14](), typeOf[sap.SapModelV15]()},
	"File":             {typeOf[sap.FileV14](), typeOf[sap.FileV15]()},
	"PropMaterial":     {typeOf[sap.PropMaterialV14](), typeOf[sap.PropMaterialV15]()},
	"PropMaterialTD":   {typeOf[sap.PropMaterialTDV14](), typeOf[sap.PropMaterialTDV15]()},
	"PropFrame":        {typeOf[sap.PropFrameV14](), typeOf[sap.PropFrameV15]()},
	"PointObj":         {typeOf[sap.PointObjV14](), typeOf[sap.PointObjV15]()},
	"FrameObj":         {typeOf[sap.FrameObjV14](), typeOf[sap.FrameObjV15]()},
	"LoadPatterns":     {typeOf[sap.LoadPatternsV14](), typeOf[sap.LoadPatternsV15]()},
	"LoadCases":        {typeOf[sap.LoadCasesV14](), typeOf[sap.LoadCasesV15]()},
	"StaticLinear":     {typeOf[sap.CaseStaticLinearV14](), typeOf[sap.CaseStaticLinearV15]()},
	"RespCombo":        {typeOf[sap.RespComboV14](), typeOf[sap.RespComboV15]()},
	"FuncRS":           {typeOf[sap.FuncRSV14](), typeOf[sap.FuncRSV15]()},
	"Analyze":          {typeOf[sap.AnalyzeV14](), typeOf[sap.AnalyzeV15]()},
	"ResultsSetup":     {typeOf[sap.ResultsSetupV14](), typeOf[sap.ResultsSetupV15]()},
	"SteelChinese2002": {typeOf[sap.SteelChinese2002V14](), typeOf[sap.SteelChinese2002V15]()},
	"View":             {typeOf[sap.ViewV14](), typeOf[sap.ViewV15]()},
}

var plainTypes = map[string]reflect.Type{
	"int":    typeOf[int](),
	"count":  typeOf[int](),
	"double": typeOf[float64](),
	"bool":   typeOf[bool](),
	"string": typeOf[string](),

	"ref:int":    typeOf[*com.IntRef](),
	"ref:double": typeOf[*com.DoubleRef](),
	"ref:bool":   typeOf[*com.BoolRef](),
	"ref:string": typeOf[*com.StringRef](),

	"array:double": typeOf[*com.ArrayRef[float64]](),
	"array:bool":   typeOf[*com.ArrayRef[bool]](),
	"array:int":    typeOf[*com.ArrayRef[int]](),
	"array:string": typeOf[*com.ArrayRef[string]](),
}

const enumsPath = "github.com/alexiusacademia/gosap/internal/sap/enums"

func assertType(t *testing.T, where, declared string, got reflect.Type) {
	t.Helper()
	if want, ok := plainTypes[declared]; ok {
		assert.Equal(t, want, got, where)
		return
	}
	p := schema.Param{Name: "x", Type: declared}
	kind, elem := p.Kind()
	require.Equal(t, schema.KindEnum, kind, where)
	assert.Equal(t, enumsPath, got.PkgPath(), where)
	assert.Equal(t, elem, got.Name(), where)
}

func TestSchemaMatchesFacades(t *testing.T) {
	s, err := schema.Load()
	require.NoError(t, err)
	require.Len(t, s.Facades, len(capabilities))

	errType := typeOf[error]()
	for _, f := range s.Facades {
		caps, ok := capabilities[f.Name]
		require.True(t, ok, f.Name)
		v14, v15 := caps[0], caps[1]

		declared := map[string]bool{}
		for _, o := range f.Ops {
			where := f.Name + "." + o.Name
			declared[o.GoMethod()] = true

			_, inV14 := v14.MethodByName(o.GoMethod())
			assert.Equal(t, o.Available(sap.V14), inV14, where)

			m, ok := v15.MethodByName(o.GoMethod())
			require.True(t, ok, where)
			mt := m.Type
			require.Equal(t, len(o.Params), mt.NumIn(), where)
			for i, p := range o.Params {
				assertType(t, where+"/"+p.Name, p.Type, mt.In(i))
			}
			require.Equal(t, 2, mt.NumOut(), where)
			assertType(t, where+"/result", o.ResultType(), mt.Out(0))
			assert.Equal(t, errType, mt.Out(1), where)
		}

		for i := 0; i < v15.NumMethod(); i++ {
			name := v15.Method(i).Name
			assert.True(t, declared[name], "%s.%s has no schema entry", f.Name, name)
		}
	}
}
