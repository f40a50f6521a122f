// SPDX-License-Identifier: MIT
// Package matrix: fixed-size square matrices.
//
// Matrix1…Matrix4 store their elements in named exported fields instead of a
// slice. Sizes 1–4 dominate referencing workloads (1D–3D coordinates plus the
// homogeneous row), and named fields make call sites like m.M02 = shift both
// faster and more readable than m.Set(0, 2, shift). Factory functions return
// these types for any square result of size ≤ 4.
//
// None of the fixed types carries extended-precision error terms; kernels
// that need them copy into General first through the getDD path.

package matrix

import "fmt"

// Fixed-size dimensions, used by the factory dispatch.
const (
	SizeMatrix1 = 1
	SizeMatrix2 = 2
	SizeMatrix3 = 3
	SizeMatrix4 = 4
)

// fixedErrorf wraps an underlying error with fixed-size method context.
func fixedErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// ---------------------------------------------------------------------------
// Matrix1
// ---------------------------------------------------------------------------

// Matrix1 is a 1×1 matrix.
type Matrix1 struct {
	M00 float64
}

// NewIdentity1 returns a 1×1 identity matrix.
func NewIdentity1() *Matrix1 {
	return &Matrix1{M00: 1}
}

func (m *Matrix1) Rows() int { return SizeMatrix1 }
func (m *Matrix1) Cols() int { return SizeMatrix1 }

func (m *Matrix1) At(row, col int) (float64, error) {
	if row != 0 || col != 0 {
		return 0, fixedErrorf("Matrix1", "At", row, col, ErrIndexOutOfBounds)
	}

	return m.M00, nil
}

func (m *Matrix1) Set(row, col int, v float64) error {
	if row != 0 || col != 0 {
		return fixedErrorf("Matrix1", "Set", row, col, ErrIndexOutOfBounds)
	}
	m.M00 = v

	return nil
}

func (m *Matrix1) Elements() []float64 { return []float64{m.M00} }

func (m *Matrix1) SetElements(elements []float64) error {
	if len(elements) != 1 {
		return fmt.Errorf("Matrix1.SetElements: want 1 element, got %d: %w",
			len(elements), ErrLengthMismatch)
	}
	m.M00 = elements[0]

	return nil
}

// IsAffine reports whether the single element, which is also the homogeneous
// row, is exactly 1.
func (m *Matrix1) IsAffine() bool { return m.M00 == 1 }

func (m *Matrix1) IsIdentity() bool { return m.M00 == 1 }

func (m *Matrix1) Clone() Matrix {
	out := *m

	return &out
}

// Transpose is a no-op on a 1×1 matrix.
func (m *Matrix1) Transpose() {}

func (m *Matrix1) String() string { return Format(m) }

// ---------------------------------------------------------------------------
// Matrix2
// ---------------------------------------------------------------------------

// Matrix2 is a 2×2 matrix, the homogeneous form of a one-dimensional
// conversion (scale and offset).
type Matrix2 struct {
	M00, M01 float64
	M10, M11 float64
}

// NewIdentity2 returns a 2×2 identity matrix.
func NewIdentity2() *Matrix2 {
	return &Matrix2{M00: 1, M11: 1}
}

func (m *Matrix2) Rows() int { return SizeMatrix2 }
func (m *Matrix2) Cols() int { return SizeMatrix2 }

func (m *Matrix2) At(row, col int) (float64, error) {
	switch {
	case row == 0 && col == 0:
		return m.M00, nil
	case row == 0 && col == 1:
		return m.M01, nil
	case row == 1 && col == 0:
		return m.M10, nil
	case row == 1 && col == 1:
		return m.M11, nil
	}

	return 0, fixedErrorf("Matrix2", "At", row, col, ErrIndexOutOfBounds)
}

func (m *Matrix2) Set(row, col int, v float64) error {
	switch {
	case row == 0 && col == 0:
		m.M00 = v
	case row == 0 && col == 1:
		m.M01 = v
	case row == 1 && col == 0:
		m.M10 = v
	case row == 1 && col == 1:
		m.M11 = v
	default:
		return fixedErrorf("Matrix2", "Set", row, col, ErrIndexOutOfBounds)
	}

	return nil
}

func (m *Matrix2) Elements() []float64 {
	return []float64{m.M00, m.M01, m.M10, m.M11}
}

func (m *Matrix2) SetElements(elements []float64) error {
	if len(elements) != SizeMatrix2*SizeMatrix2 {
		return fmt.Errorf("Matrix2.SetElements: want 4 elements, got %d: %w",
			len(elements), ErrLengthMismatch)
	}
	m.M00, m.M01 = elements[0], elements[1]
	m.M10, m.M11 = elements[2], elements[3]

	return nil
}

func (m *Matrix2) IsAffine() bool {
	return m.M10 == 0 && m.M11 == 1
}

func (m *Matrix2) IsIdentity() bool {
	return m.M00 == 1 && m.M01 == 0 && m.M10 == 0 && m.M11 == 1
}

func (m *Matrix2) Clone() Matrix {
	out := *m

	return &out
}

// Transpose exchanges rows and columns in place.
func (m *Matrix2) Transpose() {
	m.M01, m.M10 = m.M10, m.M01
}

func (m *Matrix2) String() string { return Format(m) }

// ---------------------------------------------------------------------------
// Matrix3
// ---------------------------------------------------------------------------

// Matrix3 is a 3×3 matrix, the homogeneous form of a two-dimensional
// conversion. This is the most common size for map projection chains.
type Matrix3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// NewIdentity3 returns a 3×3 identity matrix.
func NewIdentity3() *Matrix3 {
	return &Matrix3{M00: 1, M11: 1, M22: 1}
}

func (m *Matrix3) Rows() int { return SizeMatrix3 }
func (m *Matrix3) Cols() int { return SizeMatrix3 }

// cell returns a pointer to the addressed field, or nil when out of bounds.
func (m *Matrix3) cell(row, col int) *float64 {
	switch row {
	case 0:
		switch col {
		case 0:
			return &m.M00
		case 1:
			return &m.M01
		case 2:
			return &m.M02
		}
	case 1:
		switch col {
		case 0:
			return &m.M10
		case 1:
			return &m.M11
		case 2:
			return &m.M12
		}
	case 2:
		switch col {
		case 0:
			return &m.M20
		case 1:
			return &m.M21
		case 2:
			return &m.M22
		}
	}

	return nil
}

func (m *Matrix3) At(row, col int) (float64, error) {
	p := m.cell(row, col)
	if p == nil {
		return 0, fixedErrorf("Matrix3", "At", row, col, ErrIndexOutOfBounds)
	}

	return *p, nil
}

func (m *Matrix3) Set(row, col int, v float64) error {
	p := m.cell(row, col)
	if p == nil {
		return fixedErrorf("Matrix3", "Set", row, col, ErrIndexOutOfBounds)
	}
	*p = v

	return nil
}

func (m *Matrix3) Elements() []float64 {
	return []float64{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

func (m *Matrix3) SetElements(elements []float64) error {
	if len(elements) != SizeMatrix3*SizeMatrix3 {
		return fmt.Errorf("Matrix3.SetElements: want 9 elements, got %d: %w",
			len(elements), ErrLengthMismatch)
	}
	m.M00, m.M01, m.M02 = elements[0], elements[1], elements[2]
	m.M10, m.M11, m.M12 = elements[3], elements[4], elements[5]
	m.M20, m.M21, m.M22 = elements[6], elements[7], elements[8]

	return nil
}

func (m *Matrix3) IsAffine() bool {
	return m.M20 == 0 && m.M21 == 0 && m.M22 == 1
}

func (m *Matrix3) IsIdentity() bool {
	return m.M00 == 1 && m.M01 == 0 && m.M02 == 0 &&
		m.M10 == 0 && m.M11 == 1 && m.M12 == 0 &&
		m.M20 == 0 && m.M21 == 0 && m.M22 == 1
}

func (m *Matrix3) Clone() Matrix {
	out := *m

	return &out
}

// Transpose exchanges rows and columns in place.
func (m *Matrix3) Transpose() {
	m.M01, m.M10 = m.M10, m.M01
	m.M02, m.M20 = m.M20, m.M02
	m.M12, m.M21 = m.M21, m.M12
}

func (m *Matrix3) String() string { return Format(m) }

// ---------------------------------------------------------------------------
// Matrix4
// ---------------------------------------------------------------------------

// Matrix4 is a 4×4 matrix, the homogeneous form of a three-dimensional
// conversion such as a geocentric datum shift.
type Matrix4 struct {
	M00, M01, M02, M03 float64
	M10, M11, M12, M13 float64
	M20, M21, M22, M23 float64
	M30, M31, M32, M33 float64
}

// NewIdentity4 returns a 4×4 identity matrix.
func NewIdentity4() *Matrix4 {
	return &Matrix4{M00: 1, M11: 1, M22: 1, M33: 1}
}

func (m *Matrix4) Rows() int { return SizeMatrix4 }
func (m *Matrix4) Cols() int { return SizeMatrix4 }

// cell returns a pointer to the addressed field, or nil when out of bounds.
func (m *Matrix4) cell(row, col int) *float64 {
	switch row {
	case 0:
		switch col {
		case 0:
			return &m.M00
		case 1:
			return &m.M01
		case 2:
			return &m.M02
		case 3:
			return &m.M03
		}
	case 1:
		switch col {
		case 0:
			return &m.M10
		case 1:
			return &m.M11
		case 2:
			return &m.M12
		case 3:
			return &m.M13
		}
	case 2:
		switch col {
		case 0:
			return &m.M20
		case 1:
			return &m.M21
		case 2:
			return &m.M22
		case 3:
			return &m.M23
		}
	case 3:
		switch col {
		case 0:
			return &m.M30
		case 1:
			return &m.M31
		case 2:
			return &m.M32
		case 3:
			return &m.M33
		}
	}

	return nil
}

func (m *Matrix4) At(row, col int) (float64, error) {
	p := m.cell(row, col)
	if p == nil {
		return 0, fixedErrorf("Matrix4", "At", row, col, ErrIndexOutOfBounds)
	}

	return *p, nil
}

func (m *Matrix4) Set(row, col int, v float64) error {
	p := m.cell(row, col)
	if p == nil {
		return fixedErrorf("Matrix4", "Set", row, col, ErrIndexOutOfBounds)
	}
	*p = v

	return nil
}

func (m *Matrix4) Elements() []float64 {
	return []float64{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
}

func (m *Matrix4) SetElements(elements []float64) error {
	if len(elements) != SizeMatrix4*SizeMatrix4 {
		return fmt.Errorf("Matrix4.SetElements: want 16 elements, got %d: %w",
			len(elements), ErrLengthMismatch)
	}
	m.M00, m.M01, m.M02, m.M03 = elements[0], elements[1], elements[2], elements[3]
	m.M10, m.M11, m.M12, m.M13 = elements[4], elements[5], elements[6], elements[7]
	m.M20, m.M21, m.M22, m.M23 = elements[8], elements[9], elements[10], elements[11]
	m.M30, m.M31, m.M32, m.M33 = elements[12], elements[13], elements[14], elements[15]

	return nil
}

func (m *Matrix4) IsAffine() bool {
	return m.M30 == 0 && m.M31 == 0 && m.M32 == 0 && m.M33 == 1
}

func (m *Matrix4) IsIdentity() bool {
	return m.M00 == 1 && m.M01 == 0 && m.M02 == 0 && m.M03 == 0 &&
		m.M10 == 0 && m.M11 == 1 && m.M12 == 0 && m.M13 == 0 &&
		m.M20 == 0 && m.M21 == 0 && m.M22 == 1 && m.M23 == 0 &&
		m.M30 == 0 && m.M31 == 0 && m.M32 == 0 && m.M33 == 1
}

func (m *Matrix4) Clone() Matrix {
	out := *m

	return &out
}

// Transpose exchanges rows and columns in place.
func (m *Matrix4) Transpose() {
	m.M01, m.M10 = m.M10, m.M01
	m.M02, m.M20 = m.M20, m.M02
	m.M03, m.M30 = m.M30, m.M03
	m.M12, m.M21 = m.M21, m.M12
	m.M13, m.M31 = m.M31, m.M13
	m.M23, m.M32 = m.M32, m.M23
}

func (m *Matrix4) String() string { return Format(m) }
