package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	g, err := cfg.GenerationValue()
	require.NoError(t, err)
	assert.Equal(t, sap.V15, g)
	assert.Equal(t, "Sap2000v15", cfg.ProgramName())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	write(t, dir, DefaultFile, `
program: SAP2000v16
generation: v14
visible: false
units: N_mm_C
call_timeout: 30s
log_level: debug
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "SAP2000v16", cfg.ProgramName())
	assert.False(t, cfg.Visible)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.Equal(t, 256, cfg.DispIDCache)

	u, err := cfg.UnitsValue()
	require.NoError(t, err)
	assert.Equal(t, enums.NmmC, u)
}

func TestLoadNamedFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("missing.yaml")
	assert.ErrorContains(t, err, "read config")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := write(t, dir, "bad.yaml", "call_timeout: soon\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse "+path)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := write(t, dir, "custom.yaml", "generation: v14\ncall_timeout: 30s\n")
	t.Setenv("GOSAP_GENERATION", "v15")
	t.Setenv("GOSAP_CALL_TIMEOUT", "5s")
	t.Setenv("GOSAP_VISIBLE", "false")
	t.Setenv("GOSAP_DISPID_CACHE", "32")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "v15", cfg.Generation)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout)
	assert.False(t, cfg.Visible)
	assert.Equal(t, 32, cfg.DispIDCache)
}

func TestBadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOSAP_CALL_TIMEOUT", "later")
	_, err := Load("")
	assert.ErrorContains(t, err, "GOSAP_CALL_TIMEOUT")
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	write(t, dir, ".env", "GOSAP_LOG_FILE=logs/gosap.log\n")
	t.Cleanup(func() { os.Unsetenv("GOSAP_LOG_FILE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "logs/gosap.log", cfg.LogFile)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Generation = "v13"
	cfg.Units = "furlongs"
	cfg.CallTimeout = -time.Second
	cfg.DispIDCache = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown generation "v13"`)
	assert.ErrorContains(t, err, "Units with identifier furlongs does not exist")
	assert.ErrorContains(t, err, "call timeout -1s is negative")
	assert.ErrorContains(t, err, "dispid cache size 0 must be positive")
}
