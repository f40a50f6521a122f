// SPDX-License-Identifier: MIT
// Package transform: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX);
// callers will still use errors.Is to match.

package transform

import "errors"

var (
	// ErrNilTransform indicates that a nil Transform (receiver or argument)
	// was used.
	ErrNilTransform = errors.New("transform: nil transform")

	// ErrDimensionMismatch indicates that coordinate dimensions disagree,
	// either between chained steps or between a transform and its input.
	ErrDimensionMismatch = errors.New("transform: dimension mismatch")

	// ErrNonAffine signals that a linear step requires a matrix whose last
	// row is exactly 0 … 0 1.
	ErrNonAffine = errors.New("transform: affine matrix required")

	// ErrFrozen signals a mutation attempt on contextual parameters after
	// they have been concatenated into a complete transform.
	ErrFrozen = errors.New("transform: contextual parameters are frozen")

	// ErrIndexOutOfBounds indicates a step index outside a transform chain.
	ErrIndexOutOfBounds = errors.New("transform: index out of bounds")

	// ErrBadEllipsoid indicates non-positive or inconsistent ellipsoid axes.
	ErrBadEllipsoid = errors.New("transform: invalid ellipsoid axes")

	// ErrNotPositionVector indicates that a matrix given as a position
	// vector transformation is not of that form (not affine, or rotation
	// terms not antisymmetric within the given tolerance).
	ErrNotPositionVector = errors.New("transform: not a position vector transformation")

	// ErrUnformattable indicates a transform with no WKT representation.
	ErrUnformattable = errors.New("transform: no WKT representation")
)
