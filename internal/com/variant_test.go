package com

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarType_String(t *testing.T) {
	assert.Equal(t, "VT_I4", VTI4.String())
	assert.Equal(t, "VT_R8|VT_ARRAY|VT_BYREF", (VTR8 | VTArray | VTByRef).String())
	assert.Equal(t, "VT(17)|VT_BYREF", (VarType(17) | VTByRef).String())
}

func TestNewVariant_NarrowsInts(t *testing.T) {
	v, err := NewVariant(7, true)
	require.NoError(t, err)
	assert.Equal(t, VTI4|VTByRef, v.VT)
	assert.Equal(t, int32(7), v.Val)

	_, err = NewVariant(int64(1)<<40, false)
	assert.True(t, errors.Is(err, ErrUnsupportedValue))
}

func TestVariant_PutKeepsByRef(t *testing.T) {
	v := &Variant{VT: VTI4 | VTByRef, Val: int32(0)}
	require.NoError(t, v.Put([]float64{1, 2}))
	assert.Equal(t, VTR8|VTArray|VTByRef, v.VT)

	xs, ok := v.Doubles()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, xs)
}

func TestVariant_PutRejectsUnknownTypes(t *testing.T) {
	v := &Variant{VT: VTI4}
	err := v.Put(struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	assert.Equal(t, VTI4, v.VT)
}

func TestVariant_PutConvertsAnySlices(t *testing.T) {
	v := &Variant{VT: VTByRef}
	require.NoError(t, v.Put([]any{1.0, 2.0}))
	xs, ok := v.Doubles()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, xs)

	assert.Error(t, v.Put([]any{1.0, "two"}))
}

func TestVariant_CloneCopiesArrays(t *testing.T) {
	v := &Variant{VT: VTArray | VTR8, Val: []float64{1, 2}}
	c := v.Clone()
	c.Val.([]float64)[0] = 42
	assert.Equal(t, []float64{1, 2}, v.Val)
}

func TestVariant_AccessorsCheckTags(t *testing.T) {
	v := &Variant{VT: VTBool, Val: true}
	_, ok := v.Int()
	assert.False(t, ok)
	b, ok := v.Bool()
	assert.True(t, ok)
	assert.True(t, b)

	var nilV *Variant
	_, ok = nilV.Str()
	assert.False(t, ok)
}
