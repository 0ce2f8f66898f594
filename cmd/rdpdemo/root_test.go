package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/polyline"
	"github.com/gogpu/polyline/wave"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootDefaults(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Original Data Points: 735\n")
	assert.Contains(t, stdout, "Simplified Data Points: ")
	assert.Contains(t, stdout, "Reduction: ")
	assert.Empty(t, stderr)
}

func TestRootLargeEpsilonKeepsEndpoints(t *testing.T) {
	stdout, _, err := execute(t, "--epsilon", "10")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Simplified Data Points: 2\n")
}

func TestRootCyclesGroupDigits(t *testing.T) {
	stdout, _, err := execute(t, "--cycles", "2", "--shape", "square", "-e", "0.5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Original Data Points: 1,470\n")
}

func TestRootRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"negative epsilon", []string{"--epsilon", "-0.1"}, polyline.ErrInvalidEpsilon},
		{"unknown shape", []string{"--shape", "noise"}, wave.ErrInvalidConfig},
		{"zero frequency", []string{"--frequency", "0"}, wave.ErrInvalidConfig},
		{"huge sample rate", []string{"--sample-rate", "1e300"}, wave.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, _, err := execute(t, "extra")
	assert.Error(t, err, "positional arguments must be rejected")
}

func TestRootWritesPlots(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "wave.png")
	svgPath := filepath.Join(dir, "wave.svg")

	_, _, err := execute(t, "-o", pngPath, "--svg", svgPath, "--width", "320", "--height", "200")
	require.NoError(t, err)

	for _, path := range []string{pngPath, svgPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), path)
	}

	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "Original Data")
	assert.Contains(t, string(svg), "Simplified Data")
}

func TestRootPlotSizeError(t *testing.T) {
	_, _, err := execute(t, "-o", filepath.Join(t.TempDir(), "x.png"), "--width", "0")
	assert.Error(t, err)
}

func TestRootVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "-v")
	require.NoError(t, err)

	assert.Contains(t, stderr, "wave: sampled")
	assert.Contains(t, stderr, "polyline: simplified")
	assert.False(t, polyline.Logger().Enabled(t.Context(), slog.LevelDebug), "logger must be restored after the run")
}
