package tablegen

import (
	"strconv"
	"strings"
)

// Format32 returns the shortest decimal form of v that parses back to the same
// float32 bits.
func Format32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Format64 returns the shortest decimal form of v that parses back to the same
// float64 bits.
func Format64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Strings32 formats every sample with Format32.
func Strings32(table []float32) []string {
	out := make([]string, len(table))
	for i, v := range table {
		out[i] = Format32(v)
	}
	return out
}

// Strings64 formats every sample with Format64.
func Strings64(table []float64) []string {
	out := make([]string, len(table))
	for i, v := range table {
		out[i] = Format64(v)
	}
	return out
}

// Literal lays values out as the body of a composite literal: perLine values to
// a line, each line indented by a tab and ending in a comma.
func Literal(values []string, perLine int) string {
	if perLine < 1 {
		perLine = 1
	}
	var sb strings.Builder
	for start := 0; start < len(values); start += perLine {
		end := min(start+perLine, len(values))
		sb.WriteByte('\t')
		sb.WriteString(strings.Join(values[start:end], ", "))
		sb.WriteString(",\n")
	}
	return sb.String()
}
