package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/alexiusacademia/gosap/internal/com"
)

func roundTrip[ID comparable, E com.Enum[ID]](t *testing.T, table *com.EnumTable[ID, E]) {
	t.Helper()
	members := table.Members()
	require.NotEmpty(t, members)
	for _, m := range members {
		got, err := table.Lookup(m.SapID())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.NotContains(t, any(m).(interface{ String() string }).String(), "UNKNOWN")
	}
}

func TestEnums_RoundTrip(t *testing.T) {
	roundTrip(t, UnitsTable)
	roundTrip(t, MatTypeTable)
	roundTrip(t, WeightOrMassTable)
	roundTrip(t, DirTable)
	roundTrip(t, LoadPatternTypeTable)
	roundTrip(t, DistributedLoadTypeTable)
	roundTrip(t, PointLoadTypeTable)
	roundTrip(t, ComboTypeTable)
	roundTrip(t, CTypeTable)
	roundTrip(t, ItemTypeTable)
	roundTrip(t, E2DFrameTypeTable)
	roundTrip(t, LoadCaseTypeTable)
	roundTrip(t, LoadTypeTable)
	roundTrip(t, SolverTypeTable)
}

func TestEnums_KnownIdentifiers(t *testing.T) {
	assert.Equal(t, 2, MatConcrete.SapID())
	assert.Equal(t, 6, KNmC.SapID())
	assert.Equal(t, 16, TonCmC.SapID())
	assert.Equal(t, 10, Gravity.SapID())
	assert.Equal(t, 39, PatternConstruction.SapID())
	assert.Equal(t, "Accel", Accel.SapID())
	assert.Equal(t, "kN_m_C", KNmC.String())
	assert.Equal(t, "ROOFLIVE", PatternRoofLive.String())
}

func TestUnits_UnknownIdentifier(t *testing.T) {
	_, err := UnitsTable.Lookup(99)
	require.ErrorIs(t, err, com.ErrUnknownEnumIdentifier)
	assert.Equal(t, "Units with identifier 99 does not exist", err.Error())
}

func TestUnits_LookupOutsideRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.OneOf(rapid.IntRange(-1000, 0), rapid.IntRange(17, 1000)).Draw(t, "id")
		if _, err := UnitsTable.Lookup(id); err == nil {
			t.Fatalf("Lookup(%d) succeeded", id)
		}
	})
}

func TestLoadType_Parse(t *testing.T) {
	got, err := LoadTypeTable.Parse("accel")
	require.NoError(t, err)
	assert.Equal(t, Accel, got)

	got, err = LoadTypeTable.Parse("Load")
	require.NoError(t, err)
	assert.Equal(t, Load, got)

	_, err = LoadTypeTable.Parse("Displacement")
	assert.ErrorIs(t, err, com.ErrUnknownEnumIdentifier)
}

func TestUnits_ParseSymbol(t *testing.T) {
	got, err := UnitsTable.Parse("kN_mm_C")
	require.NoError(t, err)
	assert.Equal(t, KNmmC, got)
}
