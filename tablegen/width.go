package tablegen

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Width is the floating point width of a table, in bits.
type Width int

const (
	Width32 Width = 32
	Width64 Width = 64
)

// ParseWidth parses "32", "64", "float32" or "float64".
func ParseWidth(s string) (Width, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "float"))
	if err != nil {
		return 0, fmt.Errorf("parse width %q: %w", s, ErrInvalidWidth)
	}
	w := Width(n)
	if err := w.Validate(); err != nil {
		return 0, fmt.Errorf("parse width %q: %w", s, ErrInvalidWidth)
	}
	return w, nil
}

// Validate returns ErrInvalidWidth unless w is Width32 or Width64.
func (w Width) Validate() error {
	if w != Width32 && w != Width64 {
		return ErrInvalidWidth
	}
	return nil
}

// Type returns the Go type of a sample, "float32" or "float64".
func (w Width) Type() string {
	return "float" + strconv.Itoa(int(w))
}

// String ...
func (w Width) String() string {
	return w.Type()
}

// UnmarshalYAML accepts the same spellings as ParseWidth.
func (w *Width) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrInvalidWidth)
	}
	parsed, err := ParseWidth(node.Value)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
