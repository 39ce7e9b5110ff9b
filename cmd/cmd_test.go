package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/com/fake"
	"github.com/alexiusacademia/gosap/internal/config"
)

func TestApplyFlagsOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.AddFlagSet(rootCmd.PersistentFlags())
	require.NoError(t, fs.Parse([]string{"--generation", "v14", "--timeout", "5s"}))

	cfg := config.Default()
	cfg.Units = "N_m_C"
	applyFlags(fs, cfg)

	assert.Equal(t, "v14", cfg.Generation)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout)
	assert.Equal(t, "N_m_C", cfg.Units, "unchanged flags keep the configured value")
	assert.True(t, cfg.Visible)
}

func TestPrintCalls(t *testing.T) {
	c := fake.New()
	d, err := c.Connect("Sap2000.cFile")
	require.NoError(t, err)
	_, err = com.NewTarget("Sap2000.cFile", d).Call("Save", `C:\model.sdb`)
	require.NoError(t, err)

	var buf bytes.Buffer
	printCalls(&buf, c.Calls())
	assert.Contains(t, buf.String(), "DRY RUN: 1 call(s) recorded")
	assert.Contains(t, buf.String(), `Sap2000.cFile.Save  (C:\model.sdb)`)
}

func TestCloseSessionJoinsReleaseError(t *testing.T) {
	released := errors.New("release failed")
	s := &session{release: func() error { return released }}

	var err error
	closeSession(s, &err)
	assert.ErrorIs(t, err, released)

	failed := errors.New("step failed")
	err = failed
	closeSession(s, &err)
	assert.ErrorIs(t, err, failed)
	assert.ErrorIs(t, err, released)

	s.release = func() error { return nil }
	err = nil
	closeSession(s, &err)
	assert.NoError(t, err)
}
