package tablegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
package: tables
per_line: 6
tables:
  - name: Sin1000F32
    size: 1000
    width: 32
    output: sin1000_f32.go
  - name: Sin64
    size: 64
    width: float64
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "tables", cfg.Package)
	require.Equal(t, 6, cfg.PerLine)
	require.Len(t, cfg.Tables, 2)

	dir := filepath.Dir(path)
	require.Equal(t, Spec{Name: "Sin1000F32", Size: 1000, Width: Width32, Output: filepath.Join(dir, "sin1000_f32.go")}, cfg.Tables[0])
	require.Equal(t, Spec{Name: "Sin64", Size: 64, Width: Width64, Output: filepath.Join(dir, "sin64.go")}, cfg.Tables[1])
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]struct {
		body string
		err  error
	}{
		"zero size": {body: "package: p\ntables:\n  - {name: A, size: 0, width: 32}\n", err: ErrInvalidSize},
		"bad width": {body: "package: p\ntables:\n  - {name: A, size: 4, width: 16}\n", err: ErrInvalidWidth},
		"no width":  {body: "package: p\ntables:\n  - {name: A, size: 4}\n", err: ErrInvalidWidth},
		"lower":     {body: "package: p\ntables:\n  - {name: sin, size: 4, width: 32}\n", err: ErrInvalidName},
		"dashed":    {body: "package: p\ntables:\n  - {name: Sin-4, size: 4, width: 32}\n", err: ErrInvalidName},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, c.body))
			require.ErrorIs(t, err, c.err)
		})
	}

	for name, body := range map[string]string{
		"duplicate": "package: p\ntables:\n  - {name: A, size: 4, width: 32}\n  - {name: A, size: 8, width: 64}\n",
		"package":   "package: 1p\ntables: []\n",
		"unknown":   "package: p\nsize: 4\n",
		"per line":  "package: p\nper_line: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
