package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, nil)

	require.NoError(t, err, "run() should return a nil error when only usage is printed")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_PanicRecovery(t *testing.T) {
	// A syntactically broken settings file makes app.NewApp panic; run()
	// must recover it into a clean error.
	tempDir := t.TempDir()
	settingsPath := filepath.Join(tempDir, "portal.hcl")
	require.NoError(t, os.WriteFile(settingsPath, []byte("portal {\n  java_bin = \n"), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-study-directory", tempDir, "-settings", settingsPath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "application startup panicked")
}

func TestRun_MutuallyExclusiveModes(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-study-directory", "a", "-remove-study", "b"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "mutually exclusive")
}
