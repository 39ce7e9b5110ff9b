package sap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/com/fake"
	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

var classes = []string{
	"SapObject", "cAnalysisResultsSetup", "cAnalyze", "cCaseStaticLinear", "cCombo",
	"cDStChinese_2002", "cFile", "cFrameObj", "cFunctionRS", "cLoadCases", "cLoadPatterns",
	"cPointObj", "cPropFrame", "cPropMaterial", "cPropMaterialTD", "cSapModel", "cView",
}

func qualified(program string) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = program + "." + c
	}
	return out
}

func TestNewV14BindsEveryObject(t *testing.T) {
	c := fake.New()
	obj := newV14(t, c)
	assert.Equal(t, "Sap2000", obj.Program)
	assert.ElementsMatch(t, qualified("Sap2000"), c.Targets())
}

func TestNewV15BindsEveryObject(t *testing.T) {
	c := fake.New()
	obj := newV15(t, c)
	assert.Equal(t, "Sap2000v15", obj.Program)
	assert.ElementsMatch(t, qualified("Sap2000v15"), c.Targets())
}

func TestCustomProgramName(t *testing.T) {
	c := fake.New()
	obj, err := sap.NewV15(c, "SAP2000v16")
	require.NoError(t, err)

	_, err = obj.SapModel.File.NewBlank()
	require.NoError(t, err)
	call, _ := c.Last()
	assert.Equal(t, "SAP2000v16.cFile", call.Target)
}

func TestBindFailureStopsComposition(t *testing.T) {
	c := fake.New().Refuse("Sap2000.cFile", errors.New("class not registered"))

	obj, err := sap.NewV14(c, "")
	assert.Nil(t, obj)
	require.ErrorIs(t, err, com.ErrExternalCall)
	assert.EqualError(t, err, "Sap2000.cFile.Connect: class not registered")
	assert.NotContains(t, c.Targets(), "Sap2000.cView")
}

func TestV15DeprecatedOpsForward(t *testing.T) {
	c := fake.New().
		On("GetChinese2002", fake.WritesBack(0, map[int]any{1: 0.16, 2: 2})).
		On("GetOverwrite", fake.WritesBack(0, map[int]any{2: 0.9, 3: true}))
	obj := newV15(t, c)

	_, err := obj.SapModel.FuncRS.SetChinese2002("RS", 0.16, 2, 0.35, 1, 0.05)
	require.NoError(t, err)
	call, _ := c.Last()
	assert.Equal(t, "Sap2000v15.cFunctionRS", call.Target)
	assert.Equal(t, "SetChinese2002", call.Op)
	assert.Equal(t, []any{"RS", 0.16, 2, 0.35, 1.0, 0.05}, call.Args)

	alpha, si := com.NewRef(0.0), com.NewRef(0)
	_, err = obj.SapModel.FuncRS.GetChinese2002("RS", alpha, si, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.16, alpha.Get())
	assert.Equal(t, 2, si.Get())

	value, progDet := com.NewRef(0.0), com.NewRef(false)
	_, err = obj.SapModel.SteelChinese2002.GetOverwrite("F1", 3, value, progDet)
	require.NoError(t, err)
	assert.Equal(t, 0.9, value.Get())
	assert.True(t, progDet.Get())
	call, _ = c.Last()
	assert.Equal(t, "Sap2000v15.cDStChinese_2002", call.Target)

	_, err = obj.SapModel.PropMaterial.AddQuick("A992", enums.MatSteel, 1, 0)
	require.NoError(t, err)
	call, _ = c.Last()
	assert.Equal(t, "AddQuick", call.Op)
}

func TestV15AsV14(t *testing.T) {
	c := fake.New()
	obj := newV15(t, c)

	// Every v15 capability satisfies its v14 counterpart.
	var model sap.SapModelV14 = obj.SapModel.SapModelV15
	var funcs sap.FuncRSV14 = obj.SapModel.FuncRS
	_, err := model.InitializeNewModel(enums.KNmC)
	require.NoError(t, err)
	_, err = funcs.SetUser("USER", 2, com.ArrayRefOf(0.0, 1.0), com.ArrayRefOf(0.2, 0.1), 0.05)
	require.NoError(t, err)

	calls := c.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []any{6}, calls[0].Args)
}

func TestUntouchedOperationsMatchAcrossGenerations(t *testing.T) {
	exercise := func(t *testing.T, model sap.SapModelV14, mat sap.PropMaterialV14, funcs sap.FuncRSV14) {
		_, err := model.InitializeNewModel(enums.KNmC)
		require.NoError(t, err)
		_, err = mat.SetMaterial("CONC", enums.MatConcrete)
		require.NoError(t, err)
		_, err = funcs.SetUser("USER", 2, com.ArrayRefOf(0.0, 1.0), com.ArrayRefOf(0.2, 0.1), 0.05)
		require.NoError(t, err)
	}
	ops := func(calls []fake.Call) [][2]any {
		out := make([][2]any, len(calls))
		for i, c := range calls {
			out[i] = [2]any{c.Op, c.Args}
		}
		return out
	}

	c14, c15 := fake.New(), fake.New()
	v14, v15 := newV14(t, c14), newV15(t, c15)
	exercise(t, v14.SapModel, v14.SapModel.PropMaterial, v14.SapModel.FuncRS)
	exercise(t, v15.SapModel, v15.SapModel.PropMaterial, v15.SapModel.FuncRS)

	require.Len(t, c14.Calls(), 3)
	assert.Equal(t, ops(c14.Calls()), ops(c15.Calls()))
	assert.Equal(t, "Sap2000.cSapModel", c14.Calls()[0].Target)
	assert.Equal(t, "Sap2000v15.cSapModel", c15.Calls()[0].Target)
}

func TestGetOAPIVersionNumber(t *testing.T) {
	c := fake.New().On("GetOAPIVersionNumber", fake.Returns(15.1))
	obj := newV15(t, c)

	v, err := obj.GetOAPIVersionNumber()
	require.NoError(t, err)
	assert.Equal(t, 15.1, v)
}

func TestGetPresentUnits(t *testing.T) {
	c := fake.New().On("GetPresentUnits", fake.Returns(6))
	obj := newV14(t, c)

	u, err := obj.SapModel.GetPresentUnits()
	require.NoError(t, err)
	assert.Equal(t, enums.KNmC, u)

	c.On("GetPresentUnits", fake.Returns(42))
	_, err = obj.SapModel.GetPresentUnits()
	assert.ErrorIs(t, err, com.ErrUnknownEnumIdentifier)
	assert.EqualError(t, err, "Units with identifier 42 does not exist")
}

func TestTypedResults(t *testing.T) {
	c := fake.New().
		On("GetModelIsLocked", fake.Returns(true)).
		On("GetModelFilename", fake.Returns(`C:\models\frame.sdb`))
	obj := newV14(t, c)

	locked, err := obj.SapModel.GetModelIsLocked()
	require.NoError(t, err)
	assert.True(t, locked)

	name, err := obj.SapModel.GetModelFilename(true)
	require.NoError(t, err)
	assert.Equal(t, `C:\models\frame.sdb`, name)

	c.On("GetModelIsLocked", fake.Returns("yes"))
	_, err = obj.SapModel.GetModelIsLocked()
	assert.ErrorIs(t, err, com.ErrExternalCall)
}

func TestGenerationOf(t *testing.T) {
	for version, want := range map[string]sap.Generation{
		"14.2.4":          sap.V14,
		"14.0.0 Advanced": sap.V14,
		"15.1.0":          sap.V15,
		"20.2.0":          sap.V15,
	} {
		g, err := sap.GenerationOf(version)
		require.NoError(t, err, version)
		assert.Equal(t, want, g, version)
	}

	for _, bad := range []string{"", "12.0.0", "not a version"} {
		_, err := sap.GenerationOf(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseGeneration(t *testing.T) {
	g, err := sap.ParseGeneration(" V15 ")
	require.NoError(t, err)
	assert.Equal(t, sap.V15, g)
	assert.Equal(t, "v15", g.String())

	g, err = sap.ParseGeneration("14")
	require.NoError(t, err)
	assert.Equal(t, sap.V14, g)

	_, err = sap.ParseGeneration("v16")
	assert.EqualError(t, err, `unknown generation "v16", want v14 or v15`)

	assert.Equal(t, "Sap2000", sap.DefaultProgram(sap.V14))
	assert.Equal(t, "Sap2000v15", sap.DefaultProgram(sap.V15))
}
