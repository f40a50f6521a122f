// SPDX-License-Identifier: MIT
// Package dd: correction terms for well-known constants.
//
// A float64 literal like math.Pi is only the nearest representable double;
// the part that was rounded away is known from the literature and can be
// restored as the DD error term. Restoring it matters when degree↔radian
// conversion factors are chained through several affine transforms.

package dd

import "math"

// wellKnown lists |value| → (true value − rounded value) correction pairs
// for constants derived from π. Correction terms are literature-sourced;
// each is below 0.5 ulp of its value by construction.
var wellKnown = [...]struct{ value, error float64 }{
	{math.Pi, 1.2246467991473532e-16},              // π
	{2 * math.Pi, 2.4492935982947064e-16},          // 2π
	{math.Pi / 2, 6.123233995736766e-17},           // π/2
	{0.017453292519943295, 2.9486522708701687e-19}, // π/180 (degree → radian)
	{57.29577951308232, -1.9878495670576283e-15},   // 180/π (radian → degree)
}

// ErrorForWellKnownValue returns the tabulated correction term for the given
// value, negated for negative inputs, or zero when the value is not in the
// table.
func ErrorForWellKnownValue(value float64) float64 {
	abs := math.Abs(value)
	for i := range wellKnown {
		if wellKnown[i].value == abs {
			return math.Copysign(wellKnown[i].error, value)
		}
	}

	return 0
}
