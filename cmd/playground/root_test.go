package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootRunsDemo(t *testing.T) {
	out, _, err := execute(t, "--config-dir", t.TempDir(), "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "== Interfaces as types\nRandom: 3\nRandom: 5\nRandom: 4\nRandom: 5\nRandom: 4\n"), out)
	assert.Contains(t, out, "playground.Dog: Bark!")
}

func TestRollDefaultDie(t *testing.T) {
	out, _, err := execute(t, "roll", "--config-dir", t.TempDir(), "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1d6: [3] = 3\ntotal: 3\n", out)
}

func TestRollSpecs(t *testing.T) {
	out, _, err := execute(t, "roll", "2d6", "1d8", "--config-dir", t.TempDir(), "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "2d6: [3 5] = 8\n1d8: [6] = 6\ntotal: 14\n", out)
}

func TestRollBadSpec(t *testing.T) {
	_, errOut, err := execute(t, "roll", "2x6", "--config-dir", t.TempDir(), "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, errOut, "error:")
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "stats", "--trials", "600", "--config-dir", t.TempDir(), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "trials=600 ")
	assert.Contains(t, out, "chi2=")
}

func TestProfileFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "profiles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), []byte("die:\n  sides: 6\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles", "d20.yaml"), []byte("die:\n  sides: 20\n"), 0o644))

	out, _, err := execute(t, "roll", "--config-dir", dir, "--profile", "d20", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1d20: [8] = 8\ntotal: 8\n", out)
}

func TestInvalidSidesFailsFast(t *testing.T) {
	_, errOut, err := execute(t, "--sides", "0", "--config-dir", t.TempDir(), "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, errOut, "die.sides must be >= 1")
}

func TestRollHugeCountRejected(t *testing.T) {
	out, errOut, err := execute(t, "roll", "999999999999999999d6", "--config-dir", t.TempDir(), "--log-level", "error")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 1, strings.Count(errOut, "error:"))
}

func TestStatsZeroTrialsFailsAtConfig(t *testing.T) {
	_, errOut, err := execute(t, "stats", "--trials", "0", "--config-dir", t.TempDir(), "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, errOut, "demo.trials must be >= 1")
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestOutputWriteErrorsSurface(t *testing.T) {
	for _, args := range [][]string{{"roll"}, {"stats", "--trials", "60"}} {
		cmd := newRootCmd()
		var errOut bytes.Buffer
		cmd.SetOut(closedWriter{})
		cmd.SetErr(&errOut)
		cmd.SetArgs(append(args, "--config-dir", t.TempDir(), "--log-level", "error"))
		require.EqualError(t, cmd.Execute(), "closed", args[0])
		assert.Equal(t, "error: closed\n", errOut.String(), args[0])
	}
}
