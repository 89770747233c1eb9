package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wuidemo dev\n", out)
}

func TestConfigCommandPrintsFileAndFlagValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ncorner_radius = 7\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "window.corner_radius    7\n")
	assert.Contains(t, out, "log.level               debug\n")
}

func TestConfigCommandReportsBadFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
