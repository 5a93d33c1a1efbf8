package tablegen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/consensys/bavard"
	"github.com/oomph-ac/lutrig/worker"
)

// generatedBy is the tool named in the header of every rendered file.
const generatedBy = "lutrig"

const tableTemplate = `// {{.Name}} holds {{.Size}} {{.Type}} samples of sine over one quarter turn.
var {{.Name}} = [{{.Size}}]{{.Type}}{
{{.Literal}}}
`

// tableData is the data tableTemplate is executed with.
type tableData struct {
	Name    string
	Size    int
	Type    string
	Literal string
}

// Renderer writes tables as Go source files holding a single fixed-size array.
type Renderer struct {
	// Package is the package clause written to every file.
	Package string
	// PerLine is the number of samples per source line.
	PerLine int

	log *slog.Logger
}

// NewRenderer returns a Renderer for pkg that reports each file it writes to
// log. A nil log discards the reports.
func NewRenderer(pkg string, perLine int, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if perLine < 1 {
		perLine = DefaultPerLine
	}
	return &Renderer{Package: pkg, PerLine: perLine, log: log}
}

// Samples generates the table described by spec and formats every sample so
// that it parses back to the same bits.
func Samples(spec Spec) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	switch spec.Width {
	case Width32:
		table, err := Generate32(spec.Size)
		if err != nil {
			return nil, err
		}
		return Strings32(table), nil
	default:
		table, err := Generate64(spec.Size)
		if err != nil {
			return nil, err
		}
		return Strings64(table), nil
	}
}

// Render generates the table described by spec and writes it to
// spec.OutputPath(), replacing any existing file.
func (r *Renderer) Render(spec Spec) error {
	values, err := Samples(spec)
	if err != nil {
		return err
	}
	out := spec.OutputPath()
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("render %s: %w", spec.Name, err)
	}

	data := tableData{
		Name:    spec.Name,
		Size:    spec.Size,
		Type:    spec.Width.Type(),
		Literal: Literal(values, r.PerLine),
	}
	if err := bavard.GenerateFromString(out, []string{tableTemplate}, data,
		bavard.Package(r.Package),
		bavard.GeneratedBy(generatedBy),
	); err != nil {
		return fmt.Errorf("render %s: %w", spec.Name, err)
	}
	r.log.Info("rendered table", "name", spec.Name, "size", spec.Size, "width", spec.Width.String(), "file", out)
	return nil
}

// RenderAll renders every spec on the worker pool and returns the first error.
func (r *Renderer) RenderAll(specs []Spec) error {
	jobs := make([]func() error, len(specs))
	for i, spec := range specs {
		jobs[i] = func() error {
			return r.Render(spec)
		}
	}
	return worker.Run(jobs...)
}

// RenderConfig renders every table of cfg into cfg.Package.
func RenderConfig(cfg Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return NewRenderer(cfg.Package, cfg.PerLine, log).RenderAll(cfg.Tables)
}
