package script

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/com/fake"
	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
	"github.com/alexiusacademia/gosap/internal/sap/schema"
)

const model = `
generation: v15
steps:
  - call: SapModel.InitializeNewModel
    args: [kN_m_C]
  - call: File.NewBlank
  - call: PropMaterial.SetMaterial
    args: [C28, Concrete]
  - call: PropMaterial.SetMPIsotropic
    args: [C28, 24870000, 0.2, 9.9e-6]
  - call: PointObj.GetCoordCartesian
    args: ["1"]
  - call: PropMaterial.Count
`

func newRunner(c *fake.Connector, logger *slog.Logger) *Runner {
	return NewRunner(c, schema.MustLoad(), sap.V15, "", logger)
}

func TestParseScript(t *testing.T) {
	s, err := Parse([]byte(model))
	require.NoError(t, err)
	assert.Equal(t, "v15", s.Generation)
	require.Len(t, s.Steps, 6)
	assert.Equal(t, []string{"C28", "24870000", "0.2", "9.9e-6"}, s.Steps[3].Args)

	_, err = Parse([]byte("steps: []"))
	assert.EqualError(t, err, "script has no steps")

	_, err = Parse([]byte("steps:\n  - args: [1]\n"))
	assert.EqualError(t, err, "step 1: call is required")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(model), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 6)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read script")
}

func TestRunExecutesInOrder(t *testing.T) {
	c := fake.New().
		On("GetCoordCartesian", fake.WritesBack(0, map[int]any{1: 1.5, 2: 0.0, 3: 3.0})).
		On("Count", fake.Returns(3))
	s, err := Parse([]byte(model))
	require.NoError(t, err)

	results, err := newRunner(c, nil).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 6)

	calls := c.Calls()
	require.Len(t, calls, 6)
	assert.Equal(t, fake.Call{Target: "Sap2000v15.cSapModel", Op: "InitializeNewModel", Args: []any{6}}, calls[0])
	assert.Equal(t, "Sap2000v15.cFile", calls[1].Target)
	assert.Equal(t, []any{"C28", 2}, calls[2].Args)
	assert.Equal(t, []any{"C28", 24870000.0, 0.2, 9.9e-6}, calls[3].Args)

	assert.Equal(t, map[string]any{"x": 1.5, "y": 0.0, "z": 3.0}, results[4].Outputs)
	assert.Equal(t, 3, results[5].Result)
	for i, r := range results {
		assert.Equal(t, i+1, r.Step)
		assert.NoError(t, r.Err)
	}

	// Each class is bound once.
	assert.Len(t, c.Targets(), 4)
}

func TestRunStopsOnStatus(t *testing.T) {
	c := fake.New().On("SetMaterial", fake.Returns(1))
	s, err := Parse([]byte(model))
	require.NoError(t, err)

	results, err := newRunner(c, nil).Run(context.Background(), s)
	require.Error(t, err)
	require.Len(t, results, 3)

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, "PropMaterial.SetMaterial", status.Call)
	assert.Equal(t, 1, status.Code)
	assert.Equal(t, "PropMaterial.SetMaterial returned status 1, want 0", results[2].Error)
	assert.Len(t, c.Calls(), 3)
}

func TestRunContinueAndExpect(t *testing.T) {
	c := fake.New().
		On("Delete", fake.Fails(errors.New("exception occurred"))).
		On("SetMaterial", fake.Returns(1))
	one := 1
	s := &Script{Steps: []Step{
		{Call: "PropMaterial.Delete", Args: []string{"OLD"}, Continue: true},
		{Call: "PropMaterial.SetMaterial", Args: []string{"C28", "Concrete"}, Expect: &one},
		{Call: "PropMaterial.Count"},
	}}

	results, err := newRunner(c, nil).Run(context.Background(), s)
	require.Len(t, results, 3)
	assert.ErrorIs(t, err, com.ErrExternalCall)
	assert.ErrorContains(t, err, "step 1: Sap2000v15.cPropMaterial.Delete: exception occurred")
	assert.NoError(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestRunHonorsContext(t *testing.T) {
	c := fake.New()
	s, err := Parse([]byte(model))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := newRunner(c, nil).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Empty(t, c.Calls())
}

func TestCallReportsLookupAndArgumentErrors(t *testing.T) {
	r := NewRunner(fake.New(), schema.MustLoad(), sap.V14, "", nil)

	res := r.Call("PropMaterial.AddMaterial", nil)
	assert.ErrorContains(t, res.Err, "requires v15")

	res = r.Call("PropMaterial.SetMaterial", []string{"C28"})
	assert.ErrorIs(t, res.Err, ErrArgCount)
}

func TestCallRejectsShortArrayBeforeInvocation(t *testing.T) {
	c := fake.New()
	res := newRunner(c, nil).Call("PointObj.SetLoadForce", []string{"1", "LIVE", "0,0,-10", "false"})
	assert.ErrorIs(t, res.Err, ErrArgCount)
	assert.Empty(t, c.Calls())
}

func TestCallMeasuresElapsed(t *testing.T) {
	c := fake.New().On("Count", func(args []any) (any, error) {
		time.Sleep(20 * time.Millisecond)
		return 3, nil
	})
	res := newRunner(c, nil).Call("PropMaterial.Count", nil)
	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Result)
	assert.GreaterOrEqual(t, res.Elapsed, 20*time.Millisecond)
}

func TestCallTypedResult(t *testing.T) {
	c := fake.New().On("GetPresentUnits", fake.Returns(9))
	res := newRunner(c, nil).Call("sapmodel.getpresentunits", nil)
	require.NoError(t, res.Err)
	assert.Equal(t, "SapModel.GetPresentUnits", res.Call)
	assert.Equal(t, enums.NmmC, res.Result)
}

func TestCallWarnsOnDeprecated(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	res := newRunner(fake.New(), logger).Call("FuncRS.SetChinese2002", []string{"RS", "0.16", "2", "0.35", "1", "0.05"})
	require.NoError(t, res.Err)
	assert.Contains(t, buf.String(), "Operation is deprecated")
	assert.Contains(t, buf.String(), "call=FuncRS.SetChinese2002")
}
