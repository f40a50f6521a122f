// SPDX-License-Identifier: MIT
// Package matrix: public interface contracts.
//
// Purpose:
//   - Define the Matrix interface implemented by General and the fixed-size
//     Matrix1…Matrix4 types.
//   - Define the internal extended-precision access contract that lets kernels
//     read and write (value, error) pairs without knowing the storage type.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/georef/dd"
)

// Matrix is a two-dimensional array of float64 values addressed as
// (row, column), both zero-based, stored row-major.
//
// Matrices used as coordinate conversions follow the homogeneous convention:
// a conversion from n source ordinates to m target ordinates is an
// (m+1)×(n+1) matrix whose last row is 0 … 0 1 (see IsAffine).
//
// Implementations may carry a hidden extended-precision error term per
// element; At and Set expose only the float64 value part.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (row, col), or ErrIndexOutOfBounds.
	At(row, col int) (float64, error)

	// Set assigns v at (row, col), or returns ErrIndexOutOfBounds.
	// On extended-precision storage the error term is re-inferred from the
	// well-known-constant table, never kept stale.
	Set(row, col int, v float64) error

	// Elements returns a copy of all elements in row-major order.
	Elements() []float64

	// SetElements replaces all elements from a row-major slice.
	// Returns ErrLengthMismatch when len(elements) != Rows()*Cols().
	SetElements(elements []float64) error

	// IsAffine reports whether the matrix is square and its last row is
	// exactly 0 … 0 1. The comparison is exact, no tolerance.
	IsAffine() bool

	// IsIdentity reports whether the matrix is square with exact ones on
	// the diagonal and exact zeros elsewhere. No tolerance.
	IsIdentity() bool

	// Clone returns a deep copy; mutations of the copy never affect the
	// original.
	Clone() Matrix
}

// extended is implemented by storages that carry a per-element double-double
// error term. Kernels go through getDD/setDD below so that plain storages
// still participate (reading infers the error term, writing drops it).
type extended interface {
	atDD(row, col int, v *dd.DD)
	setDD(row, col int, v *dd.DD)
}

// getDD loads element (row, col) of m into v, restoring the extended error
// term when the storage carries one and inferring it from the well-known
// constant table otherwise. Indices must be valid; behaviour on invalid
// indices is that of At.
func getDD(m Matrix, row, col int, v *dd.DD) {
	if x, ok := m.(extended); ok {
		x.atDD(row, col, v)

		return
	}
	value, _ := m.At(row, col)
	v.Set(value)
}

// setDD stores v into element (row, col) of m, keeping the error term when
// the storage can carry it and dropping it otherwise.
func setDD(m Matrix, row, col int, v *dd.DD) {
	if x, ok := m.(extended); ok {
		x.setDD(row, col, v)

		return
	}
	_ = m.Set(row, col, v.Value)
}

// ElementDD returns element (row, col) as a double-double, restoring the
// hidden error term when the storage carries one. This is the read half of
// the extended contract for callers outside this package.
// Errors: ErrNilMatrix, ErrIndexOutOfBounds.
func ElementDD(m Matrix, row, col int) (dd.DD, error) {
	if err := ValidateNotNil(m); err != nil {
		return dd.DD{}, fmt.Errorf("ElementDD: %w", err)
	}
	if _, err := m.At(row, col); err != nil {
		return dd.DD{}, err
	}
	var v dd.DD
	getDD(m, row, col, &v)

	return v, nil
}

// SetElementDD stores a double-double into element (row, col), keeping the
// error term when the storage can carry it.
// Errors: ErrNilMatrix, ErrIndexOutOfBounds.
func SetElementDD(m Matrix, row, col int, v dd.DD) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("SetElementDD: %w", err)
	}
	if _, err := m.At(row, col); err != nil {
		return err
	}
	setDD(m, row, col, &v)

	return nil
}
