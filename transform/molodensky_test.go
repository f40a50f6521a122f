// SPDX-License-Identifier: MIT
// Package transform_test: Molodensky datum shift.

package transform_test

import (
	"testing"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georef/transform"
)

// dms converts degrees, minutes, seconds to decimal degrees.
func dms(d, m, s float64) float64 {
	return d + m/60 + s/3600
}

// TestMolodensky_AbridgedEPSG runs the worked example of EPSG guidance note
// 7-2: shifting 53°48'33.820"N, 2°07'46.380"E, 73.0 m from WGS 84 to ED50
// with the abridged variant.
func TestMolodensky_AbridgedEPSG(t *testing.T) {
	t.Parallel()

	shift, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		true, true, 84.87, 96.49, 116.95, true)
	require.NoError(t, err)
	pipeline, err := shift.Pipeline()
	require.NoError(t, err)

	src := []float64{dms(2, 7, 46.380), dms(53, 48, 33.820), 73.0}
	dst, _, err := pipeline.Transform(src, false)
	require.NoError(t, err)
	require.Len(t, dst, 3)
	require.InDelta(t, dms(2, 7, 51.477), dst[0], 1e-6, "longitude")
	require.InDelta(t, dms(53, 48, 36.565), dst[1], 1e-6, "latitude")
	// The abridged variant reproduces the published height only to
	// decimetre level. Its own closed form
	// Δh = tX·cosφ·cosλ + tY·cosφ·sinλ + tZ·sinφ + Δfm·sin²φ − Δa
	// gives 28.0908 m at this point, 7 cm off the sample value.
	require.InDelta(t, 28.02, dst[2], 0.1, "height")
	require.InDelta(t, 28.0908, dst[2], 1e-3, "height, abridged closed form")
}

// TestMolodensky_RoundTrip shifts a point forth and back. The inverse is the
// negated translation, so the round trip reproduces the point to the
// accuracy of the method, far below the tolerance of published parameters.
func TestMolodensky_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, abridged := range []bool{false, true} {
		shift, err := transform.NewMolodensky(
			transform.WGS84(), transform.International1924(),
			true, true, 84.87, 96.49, 116.95, abridged)
		require.NoError(t, err)
		back, err := shift.Inverse()
		require.NoError(t, err)

		forward, err := shift.Pipeline()
		require.NoError(t, err)
		reverse, err := back.Pipeline()
		require.NoError(t, err)

		src := []float64{dms(2, 7, 46.380), dms(53, 48, 33.820), 73.0}
		mid, _, err := forward.Transform(src, false)
		require.NoError(t, err)
		out, _, err := reverse.Transform(mid, false)
		require.NoError(t, err)
		require.InDelta(t, src[0], out[0], 1e-6)
		require.InDelta(t, src[1], out[1], 1e-6)
		require.InDelta(t, src[2], out[2], 0.02)
	}
}

// TestMolodensky_AgainstGeocentricTranslation cross-checks the complete
// variant against the exact route: geodetic → geocentric, add the
// translation, geocentric → geodetic. With identical ellipsoids on both
// sides the only effect is the translation itself, and the two methods agree
// to a few millimetres.
func TestMolodensky_AgainstGeocentricTranslation(t *testing.T) {
	t.Parallel()

	const tX, tY, tZ = 100.0, -50.0, 75.0
	shift, err := transform.NewMolodensky(
		transform.WGS84(), transform.WGS84(),
		true, true, tX, tY, tZ, false)
	require.NoError(t, err)
	pipeline, err := shift.Pipeline()
	require.NoError(t, err)

	lon, lat, h := 12.5, 47.2, 350.0
	dst, _, err := pipeline.Transform([]float64{lon, lat, h}, false)
	require.NoError(t, err)

	geo := ellipsoid.Init("WGS84", ellipsoid.Degrees, ellipsoid.Meter,
		ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric)
	x, y, z := geo.ToECEF(lat, lon, h)
	wantLat, wantLon, wantH := geo.ToLLA(x+tX, y+tY, z+tZ)

	require.InDelta(t, wantLon, dst[0], 5e-7, "longitude")
	require.InDelta(t, wantLat, dst[1], 5e-7, "latitude")
	require.InDelta(t, wantH, dst[2], 0.05, "height")
}

// TestMolodensky_Derivative compares the analytic Jacobian with central
// finite differences, for both variants and mixed dimensions.
func TestMolodensky_Derivative(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name               string
		source3D, target3D bool
		abridged           bool
	}{
		{"complete 3D", true, true, false},
		{"abridged 3D", true, true, true},
		{"complete 2D", false, false, false},
		{"abridged 2D→3D", false, true, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			shift, err := transform.NewMolodensky(
				transform.WGS84(), transform.International1924(),
				tc.source3D, tc.target3D, 84.87, 96.49, 116.95, tc.abridged)
			require.NoError(t, err)

			src := []float64{0.037, 0.94} // radians
			if tc.source3D {
				src = append(src, 73.0)
			}
			_, jac, err := shift.Transform(src, true)
			require.NoError(t, err)
			require.NotNil(t, jac)
			require.Equal(t, shift.TargetDim(), jac.Rows())
			require.Equal(t, shift.SourceDim(), jac.Cols())

			for col := 0; col < shift.SourceDim(); col++ {
				step := 1e-6 // radians
				if col == 2 {
					step = 1.0 // metres
				}
				plus := append([]float64(nil), src...)
				minus := append([]float64(nil), src...)
				plus[col] += step
				minus[col] -= step
				dstPlus, _, err := shift.Transform(plus, false)
				require.NoError(t, err)
				dstMinus, _, err := shift.Transform(minus, false)
				require.NoError(t, err)
				for row := 0; row < shift.TargetDim(); row++ {
					want := (dstPlus[row] - dstMinus[row]) / (2 * step)
					got, err := jac.At(row, col)
					require.NoError(t, err)
					require.InDelta(t, want, got, 1e-6,
						"∂dst[%d]/∂src[%d]", row, col)
				}
			}
		})
	}
}

func TestMolodensky_Dimensions(t *testing.T) {
	t.Parallel()

	shift, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		false, false, 84.87, 96.49, 116.95, true)
	require.NoError(t, err)
	require.Equal(t, 2, shift.SourceDim())
	require.Equal(t, 2, shift.TargetDim())

	dst, _, err := shift.Transform([]float64{0.037, 0.94}, false)
	require.NoError(t, err)
	require.Len(t, dst, 2)

	_, _, err = shift.Transform([]float64{0.037, 0.94, 73}, false)
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)
}

func TestMolodensky_Parameters(t *testing.T) {
	t.Parallel()

	shift, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		true, true, 84.87, 96.49, 116.95, true)
	require.NoError(t, err)
	require.Equal(t, "Abridged Molodensky", shift.Context().Descriptor())

	byName := make(map[string]float64)
	for _, p := range shift.Parameters() {
		byName[p.Name] = p.Value
	}
	require.Equal(t, 3.0, byName["dim"])
	require.Equal(t, 6378137.0, byName["src_semi_major"])
	require.Equal(t, 6378388.0, byName["tgt_semi_major"])
	require.Equal(t, 84.87, byName["X-axis translation"])
	require.Equal(t, 96.49, byName["Y-axis translation"])
	require.Equal(t, 116.95, byName["Z-axis translation"])
	require.Equal(t, 1.0, byName["abridged"])
}

func TestMolodensky_EqualAndHash(t *testing.T) {
	t.Parallel()

	a, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		true, true, 84.87, 96.49, 116.95, true)
	require.NoError(t, err)
	b, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		true, true, 84.87, 96.49, 116.95, true)
	require.NoError(t, err)
	complete, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		true, true, 84.87, 96.49, 116.95, false)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(complete), "variants are distinct operations")
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), complete.Hash())
}

// TestMolodensky_PipelineFreezesContext: assembling the pipeline must freeze
// the contextual parameters against further edits.
func TestMolodensky_PipelineFreezesContext(t *testing.T) {
	t.Parallel()

	shift, err := transform.NewMolodensky(
		transform.WGS84(), transform.International1924(),
		false, false, 84.87, 96.49, 116.95, true)
	require.NoError(t, err)
	require.False(t, shift.Context().IsFrozen())

	_, err = shift.Pipeline()
	require.NoError(t, err)
	require.True(t, shift.Context().IsFrozen())
	require.ErrorIs(t, shift.Context().SetParameter("dim", 2), transform.ErrFrozen)
}
