// SPDX-License-Identifier: MIT
// Package matrix: General storage.
//
// General is the row-major variable-size implementation of the Matrix
// interface. It optionally carries a parallel slice of double-double error
// terms; arithmetic kernels (Multiply, Solve, Inverse, factory chains) write
// their results through the extended path so that precision survives long
// concatenations of conversions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/georef/dd"
)

// generalErrorf wraps an underlying error with General method context.
func generalErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("General.%s(%d,%d): %w", method, row, col, err)
}

// General is a row-major rows×cols matrix of float64 values.
// When errs is non-nil it has the same length as data and holds the
// double-double error term of each element.
type General struct {
	rows, cols int
	data       []float64
	errs       []float64 // nil for plain storage
}

// NewGeneral creates a rows×cols General matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows·cols) time and memory.
func NewGeneral(rows, cols int) (*General, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &General{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewExtended creates a rows×cols General matrix with extended-precision
// storage: every element carries a double-double error term. All arithmetic
// kernels in this package return matrices created through this constructor.
func NewExtended(rows, cols int) (*General, error) {
	m, err := NewGeneral(rows, cols)
	if err != nil {
		return nil, err
	}
	m.errs = make([]float64, rows*cols)

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *General) Rows() int {
	return m.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (m *General) Cols() int {
	return m.cols
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *General) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, generalErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.cols {
		return 0, generalErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.cols + col, nil
}

// At retrieves the element value at (row, col). The hidden error term, if
// any, is not part of the result. Complexity: O(1).
func (m *General) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). On extended storage the error term is
// re-inferred from the well-known-constant table, so setting π/180 through
// this method still restores the full double-double constant.
// Complexity: O(1).
func (m *General) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	if m.errs != nil {
		m.errs[idx] = dd.ErrorForWellKnownValue(v)
	}

	return nil
}

// atDD implements the extended access contract: load value and error term.
func (m *General) atDD(row, col int, v *dd.DD) {
	idx := row*m.cols + col
	v.Value = m.data[idx]
	if m.errs != nil {
		v.Error = m.errs[idx]
	} else {
		v.Error = dd.ErrorForWellKnownValue(m.data[idx])
	}
}

// setDD implements the extended access contract: store value and error term.
// On plain storage the error term is dropped.
func (m *General) setDD(row, col int, v *dd.DD) {
	idx := row*m.cols + col
	m.data[idx] = v.Value
	if m.errs != nil {
		m.errs[idx] = v.Error
	}
}

// Elements returns a copy of all element values in row-major order.
// Complexity: O(rows·cols).
func (m *General) Elements() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// SetElements replaces all elements from a row-major slice.
// Error terms are re-inferred per element on extended storage.
// Errors: ErrLengthMismatch. Complexity: O(rows·cols).
func (m *General) SetElements(elements []float64) error {
	if len(elements) != len(m.data) {
		return fmt.Errorf("General.SetElements: want %d elements, got %d: %w",
			len(m.data), len(elements), ErrLengthMismatch)
	}
	copy(m.data, elements)
	if m.errs != nil {
		for i, v := range elements {
			m.errs[i] = dd.ErrorForWellKnownValue(v)
		}
	}

	return nil
}

// IsAffine reports whether the matrix is square and its last row is exactly
// 0 … 0 1. Exact comparison, no tolerance. Complexity: O(cols).
func (m *General) IsAffine() bool {
	if m.rows != m.cols {
		return false
	}
	last := (m.rows - 1) * m.cols
	for col := 0; col < m.cols-1; col++ {
		if m.data[last+col] != 0 {
			return false
		}
	}

	return m.data[last+m.cols-1] == 1
}

// IsIdentity reports whether the matrix is square with exact ones on the
// diagonal and exact zeros elsewhere. Complexity: O(rows·cols).
func (m *General) IsIdentity() bool {
	if m.rows != m.cols {
		return false
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			want := 0.0
			if row == col {
				want = 1.0
			}
			if m.data[row*m.cols+col] != want {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy, extended storage included.
// Complexity: O(rows·cols) time and memory.
func (m *General) Clone() Matrix {
	out := &General{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	if m.errs != nil {
		out.errs = make([]float64, len(m.errs))
		copy(out.errs, m.errs)
	}

	return out
}

// Transpose exchanges rows and columns in place. Works on rectangular
// matrices: a rows×cols matrix becomes cols×rows.
// Complexity: O(rows·cols) time, O(rows·cols) scratch space.
func (m *General) Transpose() {
	data := make([]float64, len(m.data))
	var errs []float64
	if m.errs != nil {
		errs = make([]float64, len(m.errs))
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			src := row*m.cols + col
			dst := col*m.rows + row
			data[dst] = m.data[src]
			if errs != nil {
				errs[dst] = m.errs[src]
			}
		}
	}
	m.rows, m.cols = m.cols, m.rows
	m.data = data
	m.errs = errs
}

// String implements fmt.Stringer using the box-drawing layout of Format.
func (m *General) String() string {
	return Format(m)
}
