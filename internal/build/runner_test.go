package build

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBuildTool writes a small script that stands in for cargo and returns
// its path. The script echoes its arguments to a file, prints the given
// stderr text, and exits with the given code.
func fakeBuildTool(t *testing.T, stderr string, exitCode int) (tool string, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script build stub")
	}

	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	tool = filepath.Join(dir, "fakecargo")

	script := "#!/bin/sh\n" +
		"echo \"$@\" > " + argsFile + "\n" +
		"printf '%s' '" + stderr + "' >&2\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	require.NoError(t, os.WriteFile(tool, []byte(script), 0755))
	return tool, argsFile
}

func TestProbeSuccess(t *testing.T) {
	tool, _ := fakeBuildTool(t, "", 0)
	r := &Runner{Command: tool, Dir: t.TempDir()}

	res, err := r.Probe()
	require.NoError(t, err)
	assert.True(t, res.Succeeded)
}

func TestProbeCapturesDiagnostics(t *testing.T) {
	tool, argsFile := fakeBuildTool(t, "error: failed to select a version for `serde`", 1)
	r := &Runner{Command: tool, Dir: t.TempDir()}

	res, err := r.Probe()
	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Contains(t, res.Diagnostics, "failed to select a version for `serde`")

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "build\n", string(args))
}

func TestProbeMissingTool(t *testing.T) {
	r := &Runner{Command: filepath.Join(t.TempDir(), "no-such-tool"), Dir: t.TempDir()}
	_, err := r.Probe()
	require.Error(t, err)
}

func TestTrialPassesManifestPath(t *testing.T) {
	tool, argsFile := fakeBuildTool(t, "", 0)
	r := &Runner{Command: tool, Dir: t.TempDir()}

	ok, err := r.Trial("/tmp/Cargo.hoist.toml")
	require.NoError(t, err)
	assert.True(t, ok)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "build --manifest-path /tmp/Cargo.hoist.toml\n", string(args))
}

func TestTrialFailureIsNotAnError(t *testing.T) {
	tool, _ := fakeBuildTool(t, "error: build broke", 1)
	r := &Runner{Command: tool, Dir: t.TempDir()}

	ok, err := r.Trial("/tmp/Cargo.hoist.toml")
	require.NoError(t, err)
	assert.False(t, ok)
}
