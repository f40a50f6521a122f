// SPDX-License-Identifier: MIT
// Package transform: Bursa-Wolf (position vector) datum shift parameters.

package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/georef/dd"
	"github.com/katalvlaran/georef/matrix"
)

// ppm scales the dS parameter, expressed in parts per million.
const ppm = 1e6

// arcSecondsInCircleHalf is the number of arc-seconds in 180°.
const arcSecondsInCircleHalf = 180 * 60 * 60

// BursaWolfParameters are the seven parameters of a position vector
// transformation between two geocentric frames (EPSG 9606): a translation in
// metres, a rotation in arc-seconds and a scale difference in parts per
// million. Rotation signs follow the position vector convention, opposite to
// the coordinate frame rotation of EPSG 9607.
type BursaWolfParameters struct {
	TX, TY, TZ float64 // geocentric translation, metres
	RX, RY, RZ float64 // rotation, arc-seconds
	DS         float64 // scale difference, ppm
}

// arcSecondsToRadians returns the arc-second → radian factor in extended
// precision, carrying the error term of π from the well-known table.
func arcSecondsToRadians() dd.DD {
	factor := dd.New(math.Pi)
	factor.DivideDouble(arcSecondsInCircleHalf)

	return factor
}

// IsIdentity reports whether every parameter is zero.
func (p *BursaWolfParameters) IsIdentity() bool {
	return p.TX == 0 && p.TY == 0 && p.TZ == 0 && p.IsTranslation()
}

// IsTranslation reports whether the rotation and scale terms are all zero,
// leaving a pure geocentric translation (EPSG 9603).
func (p *BursaWolfParameters) IsTranslation() bool {
	return p.RX == 0 && p.RY == 0 && p.RZ == 0 && p.DS == 0
}

// PositionVectorTransformation builds the 4×4 affine matrix of the position
// vector transformation in extended precision:
//
//	┌                            ┐
//	│    S    −rZ·S   +rY·S   tX │
//	│  +rZ·S     S    −rX·S   tY │
//	│  −rY·S   +rX·S     S    tZ │
//	│    0       0       0     1 │
//	└                            ┘
//
// with S = 1 + dS/1e6 on the diagonal and the rotation terms additionally
// converted from arc-seconds to radians. Every product is evaluated in
// double-double arithmetic, so concatenating the matrix with the inverse
// parameters collapses to the identity far below double precision.
func (p *BursaWolfParameters) PositionVectorTransformation() *matrix.General {
	m, _ := matrix.NewExtended(4, 4)

	scale := dd.New(1)
	ds := dd.New(p.DS)
	ds.DivideDouble(ppm)
	scale.Add(&ds)

	// RS = (arc-second → radian) × S, the common factor of all rotation terms.
	rs := arcSecondsToRadians()
	rs.Multiply(&scale)

	set := func(row, col int, factor dd.DD, value float64) {
		factor.MultiplyDouble(value)
		_ = matrix.SetElementDD(m, row, col, factor)
	}
	_ = matrix.SetElementDD(m, 0, 0, scale)
	_ = matrix.SetElementDD(m, 1, 1, scale)
	_ = matrix.SetElementDD(m, 2, 2, scale)
	set(0, 1, rs, -p.RZ)
	set(0, 2, rs, +p.RY)
	set(1, 0, rs, +p.RZ)
	set(1, 2, rs, -p.RX)
	set(2, 0, rs, -p.RY)
	set(2, 1, rs, +p.RX)
	_ = m.Set(0, 3, p.TX)
	_ = m.Set(1, 3, p.TY)
	_ = m.Set(2, 3, p.TZ)
	_ = m.Set(3, 3, 1)

	return m
}

// SetPositionVectorTransformation extracts the seven parameters from a
// position vector transformation matrix, overwriting the receiver.
// Implementation:
//   - Stage 1: the matrix must be 4×4 with an exact 0 0 0 1 last row.
//   - Stage 2: S is the mean of the diagonal, the rotations come from the
//     antisymmetric differences, everything read and divided in extended
//     precision so that a matrix built by PositionVectorTransformation gives
//     back the original parameters bit for bit.
//   - Stage 3: the parameters are verified by rebuilding the matrix and
//     comparing element-wise; tolerance is relative to the element magnitude.
//
// Errors: matrix.ErrNilMatrix; ErrDimensionMismatch when not 4×4;
// ErrNotPositionVector when the form or the verification fails.
func (p *BursaWolfParameters) SetPositionVectorTransformation(m matrix.Matrix, tolerance float64) error {
	if m == nil {
		return fmt.Errorf("SetPositionVectorTransformation: %w", matrix.ErrNilMatrix)
	}
	if m.Rows() != 4 || m.Cols() != 4 {
		return fmt.Errorf("SetPositionVectorTransformation: got %d×%d, want 4×4: %w",
			m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	if !m.IsAffine() {
		return fmt.Errorf("SetPositionVectorTransformation: last row is not 0 0 0 1: %w",
			ErrNotPositionVector)
	}

	elt := func(row, col int) dd.DD {
		v, _ := matrix.ElementDD(m, row, col)

		return v
	}
	// S from the diagonal mean, then dS = (S − 1)·1e6.
	scale := elt(0, 0)
	d := elt(1, 1)
	scale.Add(&d)
	d = elt(2, 2)
	scale.Add(&d)
	scale.DivideDouble(3)
	ds := scale
	ds.AddDouble(-1)
	ds.MultiplyDouble(ppm)

	// 2·RS divides the antisymmetric rotation differences.
	twoRS := arcSecondsToRadians()
	twoRS.Multiply(&scale)
	twoRS.MultiplyDouble(2)
	rotation := func(row, col int) float64 {
		r := elt(row, col)
		d := elt(col, row)
		r.Subtract(&d)
		r.Divide(&twoRS)

		return r.Value
	}
	p.TX, _ = m.At(0, 3)
	p.TY, _ = m.At(1, 3)
	p.TZ, _ = m.At(2, 3)
	p.RX = rotation(2, 1)
	p.RY = rotation(0, 2)
	p.RZ = rotation(1, 0)
	p.DS = ds.Value

	// A genuine position vector matrix reproduces itself from the extracted
	// parameters; anything else (shear, asymmetric rotation) does not.
	rebuilt := p.PositionVectorTransformation()
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			want, _ := m.At(row, col)
			got, _ := rebuilt.At(row, col)
			limit := tolerance * math.Max(1, math.Max(math.Abs(want), math.Abs(got)))
			if diff := math.Abs(want - got); !(diff <= limit) {
				return fmt.Errorf(
					"SetPositionVectorTransformation: element (%d,%d) off by %g: %w",
					row, col, diff, ErrNotPositionVector)
			}
		}
	}

	return nil
}

// Inverse returns the parameters of the opposite shift. Negating all seven
// parameters is the standard first-order inversion; the neglected
// rotation×translation cross terms leave a millimetre-level residual for
// parameters of geodetic magnitude.
func (p *BursaWolfParameters) Inverse() BursaWolfParameters {
	return BursaWolfParameters{
		TX: -p.TX, TY: -p.TY, TZ: -p.TZ,
		RX: -p.RX, RY: -p.RY, RZ: -p.RZ,
		DS: -p.DS,
	}
}

// String formats the parameters as a WKT 1 TOWGS84 element, for example
// "TOWGS84[-82.981, -99.719, -110.709, -0.5076, 0.1503, 0.3898, -0.3143]".
func (p *BursaWolfParameters) String() string {
	values := [7]float64{p.TX, p.TY, p.TZ, p.RX, p.RY, p.RZ, p.DS}

	var sb strings.Builder
	sb.WriteString("TOWGS84[")
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}
