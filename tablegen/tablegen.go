// Package tablegen precomputes quarter-wave sine tables for package trig and
// renders them as Go source, so a program can carry its tables as static data
// instead of computing them at start-up.
//
// Generation is a development-time step. Every invalid input is reported as an
// error and nothing here falls back to a default size.
package tablegen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oomph-ac/lutrig/trig"
)

var (
	// ErrInvalidSize is returned for sample counts that are not positive integers.
	ErrInvalidSize = errors.New("table size must be a positive integer")
	// ErrInvalidWidth is returned for floating point widths other than 32 and 64.
	ErrInvalidWidth = errors.New("table width must be 32 or 64")
	// ErrInvalidName is returned for table names that are not exported Go identifiers.
	ErrInvalidName = errors.New("table name must be an exported Go identifier")
)

// ParseSize parses a sample count written as a plain decimal integer.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, ErrInvalidSize)
	}
	if n < 1 {
		return 0, fmt.Errorf("parse size %q: %w", s, ErrInvalidSize)
	}
	return n, nil
}

// Generate32 returns n float32 samples of sine spread evenly over
// [0, trig.Quarter32). The angle of sample i is computed in float32, and the
// sine itself is rounded to the nearest float32.
func Generate32(n int) ([]float32, error) {
	if n < 1 {
		return nil, fmt.Errorf("generate %d samples: %w", n, ErrInvalidSize)
	}
	table := make([]float32, n)
	for i := range table {
		radians := float32(i) / float32(n) * trig.Quarter32
		table[i] = float32(math.Sin(float64(radians)))
	}
	return table, nil
}

// Generate64 returns n float64 samples of sine spread evenly over
// [0, trig.Quarter64).
func Generate64(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("generate %d samples: %w", n, ErrInvalidSize)
	}
	table := make([]float64, n)
	for i := range table {
		radians := float64(i) / float64(n) * trig.Quarter64
		table[i] = math.Sin(radians)
	}
	return table, nil
}
