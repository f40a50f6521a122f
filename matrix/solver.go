// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan solver and inversion.
//
// The solver works on double-double copies of both operands: values and
// hidden error terms are loaded once, eliminated in extended precision, and
// written back into an extended-precision result. Sizes 1 and 2 take
// closed-form fast paths.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georef/dd"
)

// Solve computes X such that a×X = b using Gauss-Jordan elimination with
// partial pivoting, entirely in double-double arithmetic.
// Implementation:
//   - Stage 1: validate (non-nil, a square, a.Rows == b.Rows).
//   - Stage 2: load both operands into double-double working arrays.
//   - Stage 3: per column, pick the largest-magnitude pivot at or below the
//     diagonal, swap rows, normalize the pivot row, eliminate the others.
//
// Behavior highlights:
//   - Singularity is detected only on an exactly-zero pivot; ill-conditioned
//     systems produce large results instead of errors.
//   - Eliminated positions are forced to exact zero, and the pivot position
//     to exact one, so a well-posed system inverts to a clean matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity: O(n³ + n²·m) time, O(n² + n·m) space.
func Solve(a, b Matrix) (*General, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n := a.Rows()
	if b.Rows() != n {
		return nil, fmt.Errorf("Solve: a is %d×%d but b has %d rows: %w",
			n, n, b.Rows(), ErrDimensionMismatch)
	}
	m := b.Cols()

	// Load both operands into extended-precision working arrays.
	lhs := make([]dd.DD, n*n)
	rhs := make([]dd.DD, n*m)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			getDD(a, row, col, &lhs[row*n+col])
		}
		for col := 0; col < m; col++ {
			getDD(b, row, col, &rhs[row*m+col])
		}
	}

	var pivot, factor, term dd.DD
	for col := 0; col < n; col++ {
		// Partial pivoting: largest magnitude at or below the diagonal.
		best := col
		magnitude := math.Abs(lhs[col*n+col].Value)
		for row := col + 1; row < n; row++ {
			if v := math.Abs(lhs[row*n+col].Value); v > magnitude {
				best, magnitude = row, v
			}
		}
		if magnitude == 0 {
			return nil, fmt.Errorf("Solve: zero pivot in column %d of %d×%d system: %w",
				col, n, n, ErrSingular)
		}
		if best != col {
			swapRows(lhs, n, best, col)
			swapRows(rhs, m, best, col)
		}

		// Normalize the pivot row.
		pivot = lhs[col*n+col]
		for k := col; k < n; k++ {
			lhs[col*n+k].Divide(&pivot)
		}
		lhs[col*n+col] = dd.New(1)
		for k := 0; k < m; k++ {
			rhs[col*m+k].Divide(&pivot)
		}

		// Eliminate the column from every other row.
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor = lhs[row*n+col]
			if factor.IsZero() {
				continue
			}
			for k := col; k < n; k++ {
				term = lhs[col*n+k]
				term.Multiply(&factor)
				lhs[row*n+k].Subtract(&term)
			}
			lhs[row*n+col].Clear()
			for k := 0; k < m; k++ {
				term = rhs[col*m+k]
				term.Multiply(&factor)
				rhs[row*m+k].Subtract(&term)
			}
		}
	}

	out, err := NewExtended(n, m)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < m; col++ {
			out.setDD(row, col, &rhs[row*m+col])
		}
	}

	return out, nil
}

// swapRows exchanges rows i and j of a flat cols-wide working array.
func swapRows(data []dd.DD, cols, i, j int) {
	for k := 0; k < cols; k++ {
		data[i*cols+k], data[j*cols+k] = data[j*cols+k], data[i*cols+k]
	}
}

// Inverse computes m⁻¹.
// Sizes 1 and 2 use closed-form expressions in double-double arithmetic;
// larger sizes solve m×X = I through Gauss-Jordan.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func Inverse(m Matrix) (*General, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	switch m.Rows() {
	case SizeMatrix1:
		return inverse1(m)
	case SizeMatrix2:
		return inverse2(m)
	}

	identity, err := NewExtended(m.Rows(), m.Rows())
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	for i := 0; i < m.Rows(); i++ {
		_ = identity.Set(i, i, 1)
	}

	return Solve(m, identity)
}

// inverse1 is the closed-form 1×1 fast path: 1/m00.
func inverse1(m Matrix) (*General, error) {
	var elt dd.DD
	getDD(m, 0, 0, &elt)
	if elt.IsZero() {
		return nil, fmt.Errorf("Inverse: 1×1: %w", ErrSingular)
	}
	one := dd.New(1)
	elt.InverseDivide(&one)
	out, err := NewExtended(1, 1)
	if err != nil {
		return nil, err
	}
	out.setDD(0, 0, &elt)

	return out, nil
}

// inverse2 is the closed-form 2×2 fast path:
// [a b; c d]⁻¹ = [d −b; −c a] / (ad − bc), all in double-double.
func inverse2(m Matrix) (*General, error) {
	var a, b, c, d, det, term dd.DD
	getDD(m, 0, 0, &a)
	getDD(m, 0, 1, &b)
	getDD(m, 1, 0, &c)
	getDD(m, 1, 1, &d)

	det = a
	det.Multiply(&d)
	term = b
	term.Multiply(&c)
	det.Subtract(&term)
	if det.IsZero() {
		return nil, fmt.Errorf("Inverse: 2×2: %w", ErrSingular)
	}

	out, err := NewExtended(2, 2)
	if err != nil {
		return nil, err
	}
	d.Divide(&det)
	out.setDD(0, 0, &d)
	b.Negate()
	b.Divide(&det)
	out.setDD(0, 1, &b)
	c.Negate()
	c.Divide(&det)
	out.setDD(1, 0, &c)
	a.Divide(&det)
	out.setDD(1, 1, &a)

	return out, nil
}
