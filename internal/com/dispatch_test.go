package com_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/com/fake"
)

func TestBind_ConnectFailure(t *testing.T) {
	c := fake.New().Refuse("Sap2000v15.SapObject", errors.New("class not registered"))

	_, err := com.Bind(c, "Sap2000v15.SapObject")
	require.ErrorIs(t, err, com.ErrExternalCall)

	var ext *com.ExternalCallError
	require.ErrorAs(t, err, &ext)
	assert.Equal(t, "Connect", ext.Op)
	assert.Equal(t, "Sap2000v15.SapObject.Connect: class not registered", err.Error())
}

func TestResult_Conversions(t *testing.T) {
	d, err := com.NewResult("GetOAPIVersionNumber", 15)
	require.NoError(t, err)

	n, err := d.AsInt()
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	f, err := d.AsDouble()
	require.NoError(t, err)
	assert.Equal(t, 15.0, f)

	_, err = d.AsString()
	require.ErrorIs(t, err, com.ErrExternalCall)
	assert.Contains(t, err.Error(), "GetOAPIVersionNumber")
}

func TestResult_EmptyIsNotAnInteger(t *testing.T) {
	r := com.MustResult("Hide", nil)
	_, err := r.AsInt()
	assert.Error(t, err)
	assert.Equal(t, com.VTEmpty, r.Type())
}

func TestNewResult_Unrepresentable(t *testing.T) {
	_, err := com.NewResult("Odd", map[string]int{})
	assert.ErrorIs(t, err, com.ErrUnsupportedValue)
}

func TestTarget_TypedCalls(t *testing.T) {
	c := fake.New().
		On("GetModelFilename", fake.Returns(`C:\models\frame.sdb`)).
		On("GetModelIsLocked", fake.Returns(true)).
		On("GetMass", fake.Returns(12.5))
	target, err := com.Bind(c, "Sap2000.cSapModel")
	require.NoError(t, err)
	assert.Equal(t, "Sap2000.cSapModel", target.Name())

	s, err := target.CallString("GetModelFilename", true)
	require.NoError(t, err)
	assert.Equal(t, `C:\models\frame.sdb`, s)

	b, err := target.CallBool("GetModelIsLocked")
	require.NoError(t, err)
	assert.True(t, b)

	f, err := target.CallDouble("GetMass")
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	assert.Equal(t, []string{"Sap2000.cSapModel"}, c.Targets())
}

func TestCallEnum(t *testing.T) {
	units := com.NewEnumTable[int, unit]("Units", unit(6), unit(9))
	c := fake.New().On("GetPresentUnits", fake.Returns(9))
	target := bind(t, c)

	u, err := com.CallEnum(target, units, "GetPresentUnits")
	require.NoError(t, err)
	assert.Equal(t, unit(9), u)

	c.On("GetPresentUnits", fake.Returns(42))
	_, err = com.CallEnum(target, units, "GetPresentUnits")
	assert.ErrorIs(t, err, com.ErrUnknownEnumIdentifier)

	boom := errors.New("gone")
	c.On("GetPresentUnits", fake.Fails(boom))
	_, err = com.CallEnum(target, units, "GetPresentUnits")
	assert.ErrorIs(t, err, boom)
}
