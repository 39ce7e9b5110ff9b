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

func newV14(t *testing.T, c *fake.Connector) *sap.ObjectV14 {
	t.Helper()
	obj, err := sap.NewV14(c, "")
	require.NoError(t, err)
	return obj
}

func newV15(t *testing.T, c *fake.Connector) *sap.ObjectV15 {
	t.Helper()
	obj, err := sap.NewV15(c, "")
	require.NoError(t, err)
	return obj
}

func TestSetMaterialSendsTwoArguments(t *testing.T) {
	c := fake.New()
	obj := newV14(t, c)

	status, err := obj.SapModel.PropMaterial.SetMaterial("CONC", enums.MatConcrete)
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	calls := c.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, fake.Call{Target: "Sap2000.cPropMaterial", Op: "SetMaterial", Args: []any{"CONC", 2}}, calls[0])
}

func TestGetMaterialWritesBack(t *testing.T) {
	c := fake.New().OnTarget("Sap2000.cPropMaterial", "GetMaterial", fake.WritesBack(0, map[int]any{
		1: 2,
		2: -1,
		3: "C28",
		4: "{guid}",
	}))
	obj := newV14(t, c)

	matType, color := com.NewRef(0), com.NewRef(0)
	notes, guid := com.NewRef(""), com.NewRef("")
	status, err := obj.SapModel.PropMaterial.GetMaterial("CONC", matType, color, notes, guid)
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	assert.Equal(t, 2, matType.Get())
	assert.Equal(t, -1, color.Get())
	assert.Equal(t, "C28", notes.Get())
	assert.Equal(t, "{guid}", guid.Get())

	m, err := enums.MatTypeTable.Lookup(matType.Get())
	require.NoError(t, err)
	assert.Equal(t, enums.MatConcrete, m)
}

func TestGetMaterialDiscardsNilOutputs(t *testing.T) {
	c := fake.New().On("GetMaterial", fake.WritesBack(0, map[int]any{1: 6, 2: 3}))
	obj := newV14(t, c)

	matType := com.NewRef(0)
	_, err := obj.SapModel.PropMaterial.GetMaterial("REBAR", matType, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, matType.Get())
}

func TestSetOConcreteUsesExternalName(t *testing.T) {
	c := fake.New()
	obj := newV14(t, c)

	_, err := obj.SapModel.PropMaterial.SetOConcrete1("C28", 28, false, 1, 1, 2, 0.002, 0.005, -0.1, 0, 0)
	require.NoError(t, err)

	call, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "SetOConcrete_1", call.Op)
	assert.Len(t, call.Args, 11)
	assert.Equal(t, 28.0, call.Args[1])
}

func TestStatusCodeIsReturnedNotInterpreted(t *testing.T) {
	c := fake.New().On("Delete", fake.Returns(1))
	obj := newV14(t, c)

	status, err := obj.SapModel.PropMaterial.Delete("MISSING")
	require.NoError(t, err)
	assert.Equal(t, 1, status)
}

func TestAddMaterialReceivesAssignedName(t *testing.T) {
	c := fake.New().On("AddMaterial", fake.WritesBack(0, map[int]any{0: "4000Psi"}))
	obj := newV15(t, c)

	name := com.NewRef("")
	_, err := obj.SapModel.PropMaterial.AddMaterial(name, enums.MatConcrete, "United States", "Customary", "f'c 4000 psi")
	require.NoError(t, err)
	assert.Equal(t, "4000Psi", name.Get())

	call, _ := c.Last()
	assert.Equal(t, "Sap2000v15.cPropMaterial", call.Target)
	assert.Equal(t, 2, call.Args[1])
}

func TestSetRestraintIsRejectedBeforeInvocation(t *testing.T) {
	c := fake.New()
	obj := newV14(t, c)

	restraint := com.ArrayRefOf(true, true, true, false, false, false)
	_, err := obj.SapModel.PointObj.SetRestraint("1", restraint)

	var refErr *com.UnsupportedRefTypeError
	require.ErrorAs(t, err, &refErr)
	assert.ErrorIs(t, err, com.ErrUnsupportedRefType)
	assert.Equal(t, "SetRestraint", refErr.Op)
	assert.Equal(t, 1, refErr.Index)
	assert.Empty(t, c.Calls())
}

func TestModifiersRoundTrip(t *testing.T) {
	c := fake.New().On("GetModifiers", fake.WritesBack(0, map[int]any{
		1: []float64{1, 1, 1, 0.35, 0.35, 0.7, 1, 1},
	}))
	obj := newV14(t, c)

	_, err := obj.SapModel.PropFrame.SetModifiers("B300x500", com.ArrayRefOf(1.0, 1, 1, 0.35, 0.35, 0.7, 1, 1))
	require.NoError(t, err)

	mods := com.NewArrayRef[float64](8)
	_, err = obj.SapModel.PropFrame.GetModifiers("B300x500", mods)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 0.35, 0.35, 0.7, 1, 1}, mods.Values())
}

func TestModifiersShortArray(t *testing.T) {
	c := fake.New().On("GetModifiers", fake.WritesBack(0, map[int]any{1: []float64{1, 1}}))
	obj := newV14(t, c)

	mods := com.NewArrayRef[float64](8)
	_, err := obj.SapModel.PropFrame.GetModifiers("B300x500", mods)
	assert.ErrorIs(t, err, com.ErrArityMismatch)
	assert.Equal(t, make([]float64, 8), mods.Values())
}

func TestExternalFailure(t *testing.T) {
	boom := errors.New("exception occurred")
	c := fake.New().On("SetMPIsotropic", fake.Fails(boom))
	obj := newV14(t, c)

	_, err := obj.SapModel.PropMaterial.SetMPIsotropic("CONC", 24870, 0.2, 9.9e-6)
	assert.ErrorIs(t, err, com.ErrExternalCall)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "Sap2000.cPropMaterial.SetMPIsotropic: exception occurred")
}
