// SPDX-License-Identifier: MIT
// Package matrix: axis-aligned envelopes.
//
// An Envelope is the minimal bounding box of a region, one (min, max) pair
// per dimension. The factory derives scale-and-offset conversions from
// envelope pairs; see CreateTransformEnvelopes.

package matrix

import "fmt"

// Envelope is an axis-aligned box in an arbitrary number of dimensions.
// Bounds are not required to be ordered: a min above its max simply yields
// a negative span, which the factory propagates as a negative scale.
type Envelope struct {
	min, max []float64
}

// NewEnvelope builds an envelope from per-dimension lower and upper bounds.
// Both slices are copied. Errors: ErrInvalidDimensions on empty input,
// ErrDimensionMismatch when the slices disagree in length.
func NewEnvelope(min, max []float64) (*Envelope, error) {
	if len(min) == 0 {
		return nil, fmt.Errorf("NewEnvelope: %w", ErrInvalidDimensions)
	}
	if len(min) != len(max) {
		return nil, fmt.Errorf("NewEnvelope: %d lower vs %d upper bounds: %w",
			len(min), len(max), ErrDimensionMismatch)
	}
	e := &Envelope{
		min: make([]float64, len(min)),
		max: make([]float64, len(max)),
	}
	copy(e.min, min)
	copy(e.max, max)

	return e, nil
}

// NewEnvelope2D builds a two-dimensional envelope from a corner and a size,
// the usual (x, y, width, height) rectangle convention.
func NewEnvelope2D(x, y, width, height float64) *Envelope {
	return &Envelope{
		min: []float64{x, y},
		max: []float64{x + width, y + height},
	}
}

// Dimension returns the number of dimensions.
func (e *Envelope) Dimension() int {
	return len(e.min)
}

// Min returns the lower bound of the given dimension.
func (e *Envelope) Min(dim int) float64 {
	return e.min[dim]
}

// Max returns the upper bound of the given dimension.
func (e *Envelope) Max(dim int) float64 {
	return e.max[dim]
}

// Span returns max − min of the given dimension.
func (e *Envelope) Span(dim int) float64 {
	return e.max[dim] - e.min[dim]
}
