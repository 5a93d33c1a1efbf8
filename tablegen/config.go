package tablegen

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec describes one table to generate.
type Spec struct {
	// Name is the exported identifier of the generated array.
	Name string `yaml:"name"`
	// Size is the number of samples over one quarter turn.
	Size int `yaml:"size"`
	// Width selects float32 or float64 samples.
	Width Width `yaml:"width"`
	// Output is the file the table is written to. It defaults to the lower-cased
	// name with a .go suffix.
	Output string `yaml:"output"`
}

// Validate checks the name, size and width of the spec.
func (s Spec) Validate() error {
	if !token.IsExported(s.Name) || !token.IsIdentifier(s.Name) {
		return fmt.Errorf("table %q: %w", s.Name, ErrInvalidName)
	}
	if s.Size < 1 {
		return fmt.Errorf("table %s: size %d: %w", s.Name, s.Size, ErrInvalidSize)
	}
	if err := s.Width.Validate(); err != nil {
		return fmt.Errorf("table %s: width %d: %w", s.Name, s.Width, err)
	}
	return nil
}

// OutputPath returns Output, or the default file name when Output is empty.
func (s Spec) OutputPath() string {
	if s.Output != "" {
		return s.Output
	}
	return strings.ToLower(s.Name) + ".go"
}

// Config is a batch of tables rendered into one package.
type Config struct {
	// Package is the name of the Go package the tables are rendered into.
	Package string `yaml:"package"`
	// PerLine is the number of samples written per source line. Zero means
	// DefaultPerLine.
	PerLine int `yaml:"per_line"`
	Tables  []Spec `yaml:"tables"`
}

// DefaultPerLine is the number of samples per line used when a Config leaves
// PerLine unset.
const DefaultPerLine = 4

// Validate checks the package name and every table, and rejects duplicate
// table names.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", c.Package)
	}
	if c.PerLine < 0 {
		return fmt.Errorf("per_line must not be negative, got %d", c.PerLine)
	}
	seen := make(map[string]struct{}, len(c.Tables))
	for _, spec := range c.Tables {
		if err := spec.Validate(); err != nil {
			return err
		}
		if _, ok := seen[spec.Name]; ok {
			return fmt.Errorf("table %s is declared twice", spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}
	return nil
}

// LoadConfig reads and validates a YAML config. Relative table outputs are
// resolved against the directory holding the config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range cfg.Tables {
		out := cfg.Tables[i].OutputPath()
		if !filepath.IsAbs(out) {
			out = filepath.Join(dir, out)
		}
		cfg.Tables[i].Output = out
	}
	return cfg, nil
}
