// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrLengthMismatch indicates that a flat element slice does not have the
	// rows×cols length required by the destination matrix.
	ErrLengthMismatch = errors.New("matrix: element count mismatch")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Multiply where a.Cols != b.Rows, or envelope/axis count disagreement.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when Gauss-Jordan elimination meets a column whose
	// best pivot is exactly zero. Near-singular systems are NOT rejected; they
	// produce large or infinite results instead.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAxisNotFound signals that a target axis direction has no colinear
	// counterpart among the source axes.
	ErrAxisNotFound = errors.New("matrix: axis direction not found in source")

	// ErrColinearAxes signals that two distinct source axes are colinear with
	// the same target direction, making the mapping ambiguous.
	ErrColinearAxes = errors.New("matrix: colinear source axes")

	// ErrAffineRequired signals that an operation needs an affine matrix
	// (square, last row 0…0 1) but received something else.
	ErrAffineRequired = errors.New("matrix: affine matrix required")
)
