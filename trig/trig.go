// Package trig approximates sine, cosine and tangent from a table of sine
// samples covering one quarter turn, [0, π/2). Any other angle is folded onto
// that quarter wave: sine is odd, falls through every odd quadrant and changes
// sign every half turn, so one quarter of the period is all that is stored.
//
// Table32 and Table64 are generated from the same template and never share
// code or convert between widths. Neither calls a transcendental function
// once constructed: every evaluation is a handful of arithmetic operations
// and a single table read.
//
// Tables are expected to come from tablegen, usually through the pre-generated
// arrays in package tables. The sampling range used there is Quarter32 or
// Quarter64, the same constants the tables here fold angles with.
package trig

//go:generate go run ./internal/generator

import "math"

const (
	// Quarter32 is a quarter turn, π/2, as a float32.
	Quarter32 float32 = math.Pi / 2
	// Half32 is a half turn, π, as a float32.
	Half32 float32 = math.Pi
	// Full32 is a full turn, 2π, as a float32.
	Full32 float32 = math.Pi * 2

	// Quarter64 is a quarter turn, π/2, as a float64.
	Quarter64 float64 = math.Pi / 2
	// Half64 is a half turn, π, as a float64.
	Half64 float64 = math.Pi
	// Full64 is a full turn, 2π, as a float64.
	Full64 float64 = math.Pi * 2
)
