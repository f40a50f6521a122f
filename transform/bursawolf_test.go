// SPDX-License-Identifier: MIT
// Package transform_test: Bursa-Wolf parameters and their matrix form.

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georef/matrix"
	"github.com/katalvlaran/georef/transform"
)

// wgs72to84 are the EPSG 1238 parameters of the WGS 72 → WGS 84 shift.
func wgs72to84() transform.BursaWolfParameters {
	return transform.BursaWolfParameters{TZ: 4.5, RZ: 0.554, DS: 0.219}
}

// ed87toWGS84 are the ED87 → WGS 84 parameters, exercising all seven values.
func ed87toWGS84() transform.BursaWolfParameters {
	return transform.BursaWolfParameters{
		TX: -82.981, TY: -99.719, TZ: -110.709,
		RX: -0.5076, RY: 0.1503, RZ: 0.3898,
		DS: -0.3143,
	}
}

// apply4 multiplies a 4×4 matrix by a homogeneous vector.
func apply4(t *testing.T, m matrix.Matrix, v [4]float64) [4]float64 {
	t.Helper()

	var out [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			e, err := m.At(row, col)
			require.NoError(t, err)
			out[row] += e * v[col]
		}
	}

	return out
}

// TestPositionVectorTransformation_Matrix compares the extended-precision
// matrix against the same expression evaluated in plain double arithmetic.
func TestPositionVectorTransformation_Matrix(t *testing.T) {
	t.Parallel()

	p := ed87toWGS84()
	m := p.PositionVectorTransformation()

	scale := 1 + p.DS/1e6
	rs := math.Pi / (180 * 60 * 60) * scale
	want := [4][4]float64{
		{scale, -p.RZ * rs, +p.RY * rs, p.TX},
		{+p.RZ * rs, scale, -p.RX * rs, p.TY},
		{-p.RY * rs, +p.RX * rs, scale, p.TZ},
		{0, 0, 0, 1},
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v, err := m.At(row, col)
			require.NoError(t, err)
			require.InDelta(t, want[row][col], v, 1e-14, "element (%d,%d)", row, col)
		}
	}
}

// TestPositionVectorTransformation_WGS72 shifts the EPSG guidance note test
// point from WGS 72 to WGS 84 and back.
func TestPositionVectorTransformation_WGS72(t *testing.T) {
	t.Parallel()

	p := wgs72to84()
	src := [4]float64{3657660.66, 255768.55, 5201382.11, 1}
	want := [4]float64{3657660.78, 255778.43, 5201387.75, 1}

	got := apply4(t, p.PositionVectorTransformation(), src)
	for i := range want {
		require.InDelta(t, want[i], got[i], 0.01, "ordinate %d", i)
	}

	inv := p.Inverse()
	back := apply4(t, inv.PositionVectorTransformation(), got)
	for i := range src {
		require.InDelta(t, src[i], back[i], 0.01, "ordinate %d", i)
	}
}

// TestBursaWolf_ExactInverseProduct: the matrix times its algebraic inverse
// stays within 1e-14 of the identity even with all seven parameters set,
// because both the construction and the elimination run in double-double.
func TestBursaWolf_ExactInverseProduct(t *testing.T) {
	t.Parallel()

	p := ed87toWGS84()
	m := p.PositionVectorTransformation()
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	product, err := matrix.Multiply(m, inv)
	require.NoError(t, err)

	identity, err := matrix.CreateIdentity(4)
	require.NoError(t, err)
	require.True(t, matrix.Equal(product, identity, 1e-14), "got:\n%s", product)
}

// TestBursaWolf_InverseMatrix: negating the parameters is a first-order
// inversion. Its rotation and scale terms agree with the exact matrix
// inverse far below publication accuracy; the translation column carries
// the neglected rotation×translation cross terms, at the millimetre level
// for parameters of geodetic magnitude.
func TestBursaWolf_InverseMatrix(t *testing.T) {
	t.Parallel()

	p := ed87toWGS84()
	exact, err := matrix.Inverse(p.PositionVectorTransformation())
	require.NoError(t, err)

	negated := p.Inverse()
	approx := negated.PositionVectorTransformation()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want, err := exact.At(row, col)
			require.NoError(t, err)
			got, err := approx.At(row, col)
			require.NoError(t, err)
			tol := 1e-6
			if col == 3 {
				tol = 1e-2 // metres
			}
			require.InDelta(t, want, got, tol, "element (%d,%d)", row, col)
		}
	}
}

// TestBursaWolf_TranslationOnlyInverse: without rotation and scale the
// inversion is not approximate at all, the concatenation collapses to the
// exact identity.
func TestBursaWolf_TranslationOnlyInverse(t *testing.T) {
	t.Parallel()

	p := transform.BursaWolfParameters{TX: 84.87, TY: 96.49, TZ: 116.95}
	require.True(t, p.IsTranslation())
	require.False(t, p.IsIdentity())

	inv := p.Inverse()
	product, err := matrix.Multiply(
		p.PositionVectorTransformation(), inv.PositionVectorTransformation())
	require.NoError(t, err)
	require.True(t, product.IsIdentity(), "got:\n%s", product)
}

// TestSetPositionVectorTransformation_RoundTrip: parameters extracted from a
// matrix built by PositionVectorTransformation must come back bit for bit,
// thanks to the extended-precision storage.
func TestSetPositionVectorTransformation_RoundTrip(t *testing.T) {
	t.Parallel()

	p := ed87toWGS84()
	m := p.PositionVectorTransformation()

	var got transform.BursaWolfParameters
	require.NoError(t, got.SetPositionVectorTransformation(m, 1e-10))
	require.Equal(t, p, got)
}

func TestSetPositionVectorTransformation_Rejections(t *testing.T) {
	t.Parallel()

	var p transform.BursaWolfParameters

	err := p.SetPositionVectorTransformation(nil, 1e-10)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	small, err := matrix.CreateIdentity(3)
	require.NoError(t, err)
	err = p.SetPositionVectorTransformation(small, 1e-10)
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)

	badRow, err := matrix.CreateIdentity(4)
	require.NoError(t, err)
	require.NoError(t, badRow.Set(3, 0, 0.5))
	err = p.SetPositionVectorTransformation(badRow, 1e-10)
	require.ErrorIs(t, err, transform.ErrNotPositionVector)

	// Symmetric off-diagonal terms describe a shear, not a rotation: the
	// extraction sees a zero rotation and the verification must refuse.
	shear, err := matrix.CreateIdentity(4)
	require.NoError(t, err)
	require.NoError(t, shear.Set(0, 1, 1e-6))
	require.NoError(t, shear.Set(1, 0, 1e-6))
	err = p.SetPositionVectorTransformation(shear, 1e-10)
	require.ErrorIs(t, err, transform.ErrNotPositionVector)
}

func TestBursaWolf_String(t *testing.T) {
	t.Parallel()

	p := ed87toWGS84()
	require.Equal(t,
		"TOWGS84[-82.981, -99.719, -110.709, -0.5076, 0.1503, 0.3898, -0.3143]",
		p.String())
}
