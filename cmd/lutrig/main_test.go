package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oomph-ac/lutrig/tablegen"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(slog.New(slog.DiscardHandler), new(slog.LevelVar))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenSingle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sin16.go")
	_, err := run(t, "gen", "--size", "16", "--width", "64", "--name", "Sin16", "--package", "lut", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "package lut")
	require.Contains(t, string(data), "var Sin16 = [16]float64{")
}

func TestGenConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("package: lut\ntables:\n  - {name: A, size: 8, width: 32}\n  - {name: B, size: 8, width: 64}\n"), 0o644))

	_, err := run(t, "gen", "--config", cfg)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "a.go"))
	require.FileExists(t, filepath.Join(dir, "b.go"))
}

func TestGenInvalid(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.go")

	_, err := run(t, "gen", "--size", "0", "--name", "Bad", "--out", out)
	require.ErrorIs(t, err, tablegen.ErrInvalidSize)

	_, err = run(t, "gen", "--size", "ten", "--name", "Bad", "--out", out)
	require.ErrorIs(t, err, tablegen.ErrInvalidSize)

	_, err = run(t, "gen", "--size", "10", "--width", "16", "--name", "Bad", "--out", out)
	require.ErrorIs(t, err, tablegen.ErrInvalidWidth)

	_, err = run(t, "gen", "--size", "10", "--name", "bad", "--out", out)
	require.ErrorIs(t, err, tablegen.ErrInvalidName)

	_, err = run(t, "gen", "--size", "10")
	require.Error(t, err)

	require.NoFileExists(t, out)
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Sin1000F32")
	require.Contains(t, out, "float64")
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.True(t, strings.HasSuffix(line, " ok"), line)
	}
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "sin", "0", "1.5707963267948966", "-1.5707963267948966")
	require.NoError(t, err)
	require.Equal(t, "sin(0) = 0\nsin(1.5707963267948966) = 1\nsin(-1.5707963267948966) = -1\n", out)

	out, err = run(t, "eval", "--table", "Sin1000F64", "cos", "0")
	require.NoError(t, err)
	require.Equal(t, "cos(0) = 1\n", out)

	_, err = run(t, "eval", "sec", "0")
	require.Error(t, err)
	_, err = run(t, "eval", "--table", "Sin7", "sin", "0")
	require.Error(t, err)
	_, err = run(t, "eval", "sin", "quarter")
	require.Error(t, err)
}

func TestPlot(t *testing.T) {
	out, err := run(t, "plot", "--points", "40", "--height", "6")
	require.NoError(t, err)
	require.Contains(t, out, "sin over")

	_, err = run(t, "plot", "--from", "1", "--to", "1")
	require.Error(t, err)
	_, err = run(t, "plot", "--points", "1")
	require.Error(t, err)
}
