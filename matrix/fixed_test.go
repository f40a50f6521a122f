// SPDX-License-Identifier: MIT
// Package matrix_test: fixed-size matrix types.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/georef/matrix"
	"github.com/stretchr/testify/require"
)

// fixedUnderTest enumerates the four fixed sizes through their identity
// constructors.
func fixedUnderTest() []matrix.Matrix {
	return []matrix.Matrix{
		matrix.NewIdentity1(),
		matrix.NewIdentity2(),
		matrix.NewIdentity3(),
		matrix.NewIdentity4(),
	}
}

func TestFixed_IdentityConstructors(t *testing.T) {
	t.Parallel()

	for size, m := range fixedUnderTest() {
		require.Equal(t, size+1, m.Rows())
		require.Equal(t, size+1, m.Cols())
		require.True(t, m.IsIdentity(), "size %d", size+1)
		require.True(t, m.IsAffine(), "size %d", size+1)
	}
}

func TestFixed_AtSetRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range fixedUnderTest() {
		size := m.Rows()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				want := float64(row*size + col + 1)
				require.NoError(t, m.Set(row, col, want))
				got, err := m.At(row, col)
				require.NoError(t, err)
				require.Equal(t, want, got, "size %d (%d,%d)", size, row, col)
			}
		}

		_, err := m.At(size, 0)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		_, err = m.At(0, size)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		require.ErrorIs(t, m.Set(size, size, 1), matrix.ErrIndexOutOfBounds)

		require.ErrorIs(t, m.SetElements(make([]float64, size*size+1)), matrix.ErrLengthMismatch)
	}
}

func TestFixed_ElementsRowMajor(t *testing.T) {
	t.Parallel()

	m := &matrix.Matrix3{
		M00: 1, M01: 2, M02: 3,
		M10: 4, M11: 5, M12: 6,
		M20: 7, M21: 8, M22: 9,
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Elements())

	require.NoError(t, m.SetElements([]float64{9, 8, 7, 6, 5, 4, 3, 2, 1}))
	require.Equal(t, 9.0, m.M00)
	require.Equal(t, 1.0, m.M22)
}

func TestFixed_Affine(t *testing.T) {
	t.Parallel()

	m := &matrix.Matrix4{M00: 2, M13: 5, M22: 1, M33: 1}
	require.True(t, m.IsAffine())
	require.False(t, m.IsIdentity())

	m.M31 = 0.5
	require.False(t, m.IsAffine())
}

func TestFixed_Transpose(t *testing.T) {
	t.Parallel()

	m := &matrix.Matrix2{M00: 1, M01: 2, M10: 3, M11: 4}
	m.Transpose()
	require.Equal(t, []float64{1, 3, 2, 4}, m.Elements())

	four := &matrix.Matrix4{M03: 9, M21: 5}
	four.Transpose()
	require.Equal(t, 9.0, four.M30)
	require.Equal(t, 5.0, four.M12)
}

func TestFixed_Clone(t *testing.T) {
	t.Parallel()

	m := matrix.NewIdentity3()
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 1, 42))
	require.Equal(t, 0.0, m.M01, "mutating the clone must not touch the original")
}
