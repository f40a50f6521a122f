// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels shared by the factory and the solver.
//
// Every kernel in this file routes element access through the extended
// double-double path (getDD/setDD), so that error terms accumulated by one
// operation survive into the next. This is what keeps chains like
// "degrees → radians → datum shift → degrees" exact enough that the final
// concatenated matrix collapses back to a clean identity.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georef/dd"
)

// Multiply computes the matrix product a×b.
// Implementation:
//   - Stage 1: validate operands (non-nil, a.Cols == b.Rows).
//   - Stage 2: double-double dot product per result cell.
//
// Returns:
//   - *General with extended-precision storage, size a.Rows × b.Cols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from validation.
//
// Complexity: O(n·m·k) time, O(n·m) space.
func Multiply(a, b Matrix) (*General, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	rows, cols, inner := a.Rows(), b.Cols(), a.Cols()
	out, err := NewExtended(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	var sum, left, right dd.DD
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sum.Clear()
			for k := 0; k < inner; k++ {
				getDD(a, row, k, &left)
				getDD(b, k, col, &right)
				left.Multiply(&right)
				sum.Add(&left)
			}
			out.setDD(row, col, &sum)
		}
	}

	return out, nil
}

// Transpose exchanges rows and columns of m in place.
// Concrete types in this package transpose through their own storage;
// a foreign square implementation is transposed through At/Set.
// Errors: ErrNilMatrix; ErrNonSquare for a foreign rectangular type.
func Transpose(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Transpose: %w", err)
	}
	type transposer interface{ Transpose() }
	if t, ok := m.(transposer); ok {
		t.Transpose()

		return nil
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("Transpose: %w", ErrNonSquare)
	}
	n := m.Rows()
	for row := 0; row < n; row++ {
		for col := row + 1; col < n; col++ {
			a, _ := m.At(row, col)
			b, _ := m.At(col, row)
			_ = m.Set(row, col, b)
			_ = m.Set(col, row, a)
		}
	}

	return nil
}

// NormalizeColumns scales every column of m to unit Euclidean norm, computed
// in double-double arithmetic. A zero column yields NaN elements, which is
// left to propagate rather than masked.
// Errors: ErrNilMatrix. Complexity: O(rows·cols).
func NormalizeColumns(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("NormalizeColumns: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()

	var sum, elt, magnitude dd.DD
	for col := 0; col < cols; col++ {
		sum.Clear()
		for row := 0; row < rows; row++ {
			getDD(m, row, col, &elt)
			elt.Multiply(&elt)
			sum.Add(&elt)
		}
		magnitude = sum
		magnitude.Sqrt()
		for row := 0; row < rows; row++ {
			getDD(m, row, col, &elt)
			elt.Divide(&magnitude)
			setDD(m, row, col, &elt)
		}
	}

	return nil
}

// Concatenate modifies m in place so that applying the modified matrix to a
// coordinate is equivalent to first replacing source ordinate srcDim by
// (scale × ordinate + offset), then applying the original matrix. A nil scale
// or offset means "leave that part alone". Both updates run in double-double
// arithmetic; passing math.Pi/180 as scale restores the full constant from
// the well-known table.
//
// The matrix must follow the homogeneous convention (last column holds the
// translation terms); srcDim addresses a source ordinate, so it must be
// below Cols()-1.
//
// Errors: ErrNilMatrix, ErrIndexOutOfBounds. Complexity: O(rows).
func Concatenate(m Matrix, srcDim int, scale, offset *float64) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Concatenate: %w", err)
	}
	lastCol := m.Cols() - 1
	if srcDim < 0 || srcDim >= lastCol {
		return fmt.Errorf("Concatenate: source dimension %d of %d: %w",
			srcDim, lastCol, ErrIndexOutOfBounds)
	}

	var coeff, term, factor dd.DD
	for row := 0; row < m.Rows(); row++ {
		getDD(m, row, srcDim, &coeff)
		if offset != nil {
			// Translation picks up the pre-scale coefficient.
			getDD(m, row, lastCol, &term)
			factor = coeff
			factor.MultiplyDouble(*offset)
			term.Add(&factor)
			setDD(m, row, lastCol, &term)
		}
		if scale != nil {
			factor.Set(*scale)
			coeff.Multiply(&factor)
			setDD(m, row, srcDim, &coeff)
		}
	}

	return nil
}

// ConcatenateAfter modifies m in place so that applying the modified matrix
// is equivalent to applying the original matrix, then replacing target
// ordinate tgtDim by (scale × ordinate + offset). The whole target row is
// scaled and the offset lands in the translation column, all in
// double-double arithmetic. A nil scale or offset means "leave that part
// alone".
//
// Errors: ErrNilMatrix, ErrIndexOutOfBounds. Complexity: O(cols).
func ConcatenateAfter(m Matrix, tgtDim int, scale, offset *float64) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("ConcatenateAfter: %w", err)
	}
	lastRow := m.Rows() - 1
	if tgtDim < 0 || tgtDim >= lastRow {
		return fmt.Errorf("ConcatenateAfter: target dimension %d of %d: %w",
			tgtDim, lastRow, ErrIndexOutOfBounds)
	}

	var elt, factor dd.DD
	lastCol := m.Cols() - 1
	if scale != nil {
		for col := 0; col <= lastCol; col++ {
			getDD(m, tgtDim, col, &elt)
			factor.Set(*scale)
			elt.Multiply(&factor)
			setDD(m, tgtDim, col, &elt)
		}
	}
	if offset != nil {
		getDD(m, tgtDim, lastCol, &elt)
		elt.AddDouble(*offset)
		setDD(m, tgtDim, lastCol, &elt)
	}

	return nil
}

// Equal compares two matrices element by element within the given absolute
// tolerance. Two NaN elements compare equal, as do two infinities of the
// same sign; a tolerance of zero therefore still accepts bit-identical
// special values. Shape mismatch or a nil operand (unless both are nil)
// compares unequal.
func Equal(a, b Matrix, tolerance float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for row := 0; row < a.Rows(); row++ {
		for col := 0; col < a.Cols(); col++ {
			va, _ := a.At(row, col)
			vb, _ := b.At(row, col)
			if va == vb {
				continue // covers equal finite values and same-sign infinities
			}
			if math.IsNaN(va) && math.IsNaN(vb) {
				continue
			}
			if math.Abs(va-vb) <= tolerance {
				continue
			}

			return false
		}
	}

	return true
}
