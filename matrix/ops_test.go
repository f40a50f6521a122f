// SPDX-License-Identifier: MIT
// Package matrix_test: arithmetic kernels.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/georef/matrix"
	"github.com/stretchr/testify/require"
)

func TestMultiply(t *testing.T) {
	t.Parallel()

	a := mustCreate(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	b := mustCreate(t, 3, 2, []float64{
		7, 8,
		9, 10,
		11, 12,
	})
	product, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{
		58, 64,
		139, 154,
	}, product.Elements())
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := mustCreate(t, 2, 3, nil)
	b := mustCreate(t, 2, 2, nil)
	_, err := matrix.Multiply(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Multiply(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMultiply_DegreeRadianIdentity is the reason the extended-precision
// storage exists: a degree→radian conversion concatenated with its own
// inverse must collapse to the exact identity, with no 1e-16 residue on the
// diagonal.
func TestMultiply_DegreeRadianIdentity(t *testing.T) {
	t.Parallel()

	deg2rad, err := matrix.NewExtended(3, 3)
	require.NoError(t, err)
	require.NoError(t, deg2rad.Set(0, 0, math.Pi/180))
	require.NoError(t, deg2rad.Set(1, 1, math.Pi/180))
	require.NoError(t, deg2rad.Set(2, 2, 1))

	inv, err := matrix.Inverse(deg2rad)
	require.NoError(t, err)
	product, err := matrix.Multiply(deg2rad, inv)
	require.NoError(t, err)
	require.True(t, product.IsIdentity(),
		"deg→rad × rad→deg must be the exact identity:\n%s", product)
}

func TestNormalizeColumns(t *testing.T) {
	t.Parallel()

	m := mustCreate(t, 2, 2, []float64{
		3, 0,
		4, 2,
	})
	require.NoError(t, matrix.NormalizeColumns(m))
	v, _ := m.At(0, 0)
	require.InDelta(t, 0.6, v, 1e-15)
	v, _ = m.At(1, 0)
	require.InDelta(t, 0.8, v, 1e-15)
	v, _ = m.At(0, 1)
	require.InDelta(t, 0.0, v, 1e-15)
	v, _ = m.At(1, 1)
	require.InDelta(t, 1.0, v, 1e-15)
}

func TestNormalizeColumns_ZeroColumnPropagatesNaN(t *testing.T) {
	t.Parallel()

	m := mustCreate(t, 2, 2, []float64{
		0, 1,
		0, 0,
	})
	require.NoError(t, matrix.NormalizeColumns(m))
	v, _ := m.At(0, 0)
	require.True(t, math.IsNaN(v), "zero column must propagate NaN, got %v", v)
}

// TestConcatenate verifies the substitution semantics: the modified matrix
// applied to x equals the original applied to (scale·x + offset).
func TestConcatenate(t *testing.T) {
	t.Parallel()

	m := mustCreate(t, 3, 3, []float64{
		2, 0, 10,
		0, 3, 20,
		0, 0, 1,
	})
	scale, offset := 0.5, 4.0
	require.NoError(t, matrix.Concatenate(m, 0, &scale, &offset))
	require.Equal(t, []float64{
		1, 0, 18, // 2·0.5 and 10 + 2·4
		0, 3, 20,
		0, 0, 1,
	}, m.Elements())
}

func TestConcatenate_OffsetOnly(t *testing.T) {
	t.Parallel()

	m := mustCreate(t, 3, 3, []float64{
		2, 0, 10,
		0, 3, 20,
		0, 0, 1,
	})
	offset := -2.0
	require.NoError(t, matrix.Concatenate(m, 1, nil, &offset))
	require.Equal(t, []float64{
		2, 0, 10,
		0, 3, 14,
		0, 0, 1,
	}, m.Elements())
}

// TestConcatenateAfter verifies the output-side substitution: the modified
// matrix applied to x equals scale·(original applied to x) + offset.
func TestConcatenateAfter(t *testing.T) {
	t.Parallel()

	m := mustCreate(t, 3, 3, []float64{
		2, 0, 10,
		0, 3, 20,
		0, 0, 1,
	})
	scale, offset := 2.0, 1.0
	require.NoError(t, matrix.ConcatenateAfter(m, 0, &scale, &offset))
	require.Equal(t, []float64{
		4, 0, 21, // row doubled, then offset added to the translation
		0, 3, 20,
		0, 0, 1,
	}, m.Elements())

	err := matrix.ConcatenateAfter(m, 2, &scale, nil)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds,
		"the homogeneous row is not a target dimension")
}

func TestConcatenate_SourceDimOutOfRange(t *testing.T) {
	t.Parallel()

	m := mustCreate(t, 3, 3, nil)
	scale := 2.0
	// The last column is the translation column, not a source dimension.
	err := matrix.Concatenate(m, 2, &scale, nil)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewGeneral(2, 3)
	require.NoError(t, err)
	require.NoError(t, rect.SetElements([]float64{
		1, 2, 3,
		4, 5, 6,
	}))
	require.NoError(t, matrix.Transpose(rect))
	require.Equal(t, 3, rect.Rows())
	require.Equal(t, 2, rect.Cols())
	require.Equal(t, []float64{
		1, 4,
		2, 5,
		3, 6,
	}, rect.Elements())

	fixed := &matrix.Matrix3{M01: 2, M20: 7}
	require.NoError(t, matrix.Transpose(fixed))
	require.Equal(t, 2.0, fixed.M10)
	require.Equal(t, 7.0, fixed.M02)

	require.ErrorIs(t, matrix.Transpose(nil), matrix.ErrNilMatrix)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	nan, inf := math.NaN(), math.Inf(1)
	a := mustCreate(t, 2, 2, []float64{1, nan, inf, 4})
	b := mustCreate(t, 2, 2, []float64{1, nan, inf, 4 + 1e-12})

	require.True(t, matrix.Equal(a, b, 1e-9), "NaN==NaN, same-sign ∞ and tolerance must hold")
	require.False(t, matrix.Equal(a, b, 1e-15), "difference above tolerance")

	c := mustCreate(t, 2, 2, []float64{1, nan, math.Inf(-1), 4})
	require.False(t, matrix.Equal(a, c, 1e-9), "opposite-sign infinities differ")

	d := mustCreate(t, 2, 3, nil)
	require.False(t, matrix.Equal(a, d, 1e-9), "shape mismatch")

	require.True(t, matrix.Equal(nil, nil, 0))
	require.False(t, matrix.Equal(a, nil, 0))
}
