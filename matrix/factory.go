// SPDX-License-Identifier: MIT
// Package matrix: factory functions.
//
// The factory is the public entry point for building coordinate-conversion
// matrices: literal element grids, identities, change-of-axis conversions
// derived from axis directions, scale-and-offset conversions derived from
// envelope pairs, dimension selection and pass-through expansion. Square
// results of size ≤ 4 use the fixed-size types; everything computed through
// double-double arithmetic comes back as an extended-precision General.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/georef/dd"
)

// newSquareZero allocates a zero square matrix, picking the fixed-size type
// for sizes 1–4 and General beyond.
func newSquareZero(size int) (Matrix, error) {
	switch size {
	case SizeMatrix1:
		return &Matrix1{}, nil
	case SizeMatrix2:
		return &Matrix2{}, nil
	case SizeMatrix3:
		return &Matrix3{}, nil
	case SizeMatrix4:
		return &Matrix4{}, nil
	}

	return NewGeneral(size, size)
}

// Create builds a rows×cols matrix from a row-major element slice.
// A nil slice yields a zero matrix. Square sizes 1–4 come back as the
// fixed-size types, everything else as General.
// Errors: ErrInvalidDimensions, ErrLengthMismatch.
func Create(rows, cols int, elements []float64) (Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	var m Matrix
	if rows == cols && rows <= SizeMatrix4 {
		m, _ = newSquareZero(rows)
	} else {
		var err error
		if m, err = NewGeneral(rows, cols); err != nil {
			return nil, fmt.Errorf("Create: %w", err)
		}
	}
	if elements != nil {
		if err := m.SetElements(elements); err != nil {
			return nil, fmt.Errorf("Create: %w", err)
		}
	}

	return m, nil
}

// CreateIdentity returns a size×size identity matrix.
// Errors: ErrInvalidDimensions.
func CreateIdentity(size int) (Matrix, error) {
	switch size {
	case SizeMatrix1:
		return NewIdentity1(), nil
	case SizeMatrix2:
		return NewIdentity2(), nil
	case SizeMatrix3:
		return NewIdentity3(), nil
	case SizeMatrix4:
		return NewIdentity4(), nil
	}
	m, err := NewGeneral(size, size)
	if err != nil {
		return nil, fmt.Errorf("CreateIdentity: %w", err)
	}
	for i := 0; i < size; i++ {
		_ = m.Set(i, i, 1)
	}

	return m, nil
}

// CreateDiagonal returns a rows×cols matrix with ones on the main diagonal
// and zeros elsewhere. For a square shape this is the identity; rectangular
// shapes drop or ignore the extra dimensions.
// Errors: ErrInvalidDimensions.
func CreateDiagonal(rows, cols int) (Matrix, error) {
	if rows == cols {
		return CreateIdentity(rows)
	}
	m, err := NewGeneral(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("CreateDiagonal: %w", err)
	}
	n := rows
	if cols < n {
		n = cols
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1)
	}

	return m, nil
}

// Copy returns a deep copy of m, or nil for a nil input.
func Copy(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// CreateTransformAxes builds the change-of-axis conversion from source axis
// directions to target axis directions, as an affine
// (len(dst)+1)×(len(src)+1) matrix of 0 and ±1 coefficients.
//
// Behavior highlights:
//   - Each target axis matches the source axis colinear with it: +1 when the
//     directions are equal, −1 when opposed.
//   - A target direction may appear several times; each occurrence maps
//     independently, so axes can be duplicated or dropped.
//   - Unit conversions are out of scope: directions carry no units here.
//
// Errors:
//   - ErrAxisNotFound when a target direction has no colinear source axis;
//     the message names the offending target direction.
//   - ErrColinearAxes when two distinct source axes are colinear with the
//     same target direction; the message names both source directions.
//   - ErrInvalidDimensions on an empty axis list.
//
// Complexity: O(len(dst)·len(src)).
func CreateTransformAxes(src, dst []AxisDirection) (Matrix, error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, fmt.Errorf("CreateTransformAxes: %w", ErrInvalidDimensions)
	}
	m, err := Create(len(dst)+1, len(src)+1, nil)
	if err != nil {
		return nil, fmt.Errorf("CreateTransformAxes: %w", err)
	}
	_ = m.Set(len(dst), len(src), 1)

	for dstIdx, dstDir := range dst {
		srcIdx := -1
		sign := 0.0
		for i, srcDir := range src {
			if srcDir.Absolute() != dstDir.Absolute() {
				continue
			}
			if srcIdx >= 0 {
				return nil, fmt.Errorf("CreateTransformAxes: source axes %q and %q are colinear: %w",
					src[srcIdx], srcDir, ErrColinearAxes)
			}
			srcIdx = i
			if srcDir == dstDir {
				sign = 1
			} else {
				sign = -1
			}
		}
		if srcIdx < 0 {
			return nil, fmt.Errorf("CreateTransformAxes: no source axis colinear with %q: %w",
				dstDir, ErrAxisNotFound)
		}
		_ = m.Set(dstIdx, srcIdx, sign)
	}

	return m, nil
}

// envelopeScaleOffset computes, in double-double arithmetic, the scale and
// offset mapping [srcMin, srcMax] onto [dstMin, dstMax]:
// scale = dstSpan/srcSpan, offset = dstMin − scale·srcMin. A zero source
// span propagates infinities or NaN instead of failing.
func envelopeScaleOffset(srcMin, srcMax, dstMin, dstMax float64) (scale, offset dd.DD) {
	scale = dd.New(dstMax)
	scale.AddDouble(-dstMin)
	span := dd.New(srcMax)
	span.AddDouble(-srcMin)
	scale.Divide(&span)

	offset = scale
	offset.MultiplyDouble(srcMin)
	offset.Negate()
	offset.AddDouble(dstMin)

	return scale, offset
}

// CreateTransformEnvelopes builds the scale-and-offset conversion mapping
// the source envelope onto the destination envelope, axis order unchanged.
// Implementation:
//   - Stage 1: per shared dimension, scale = span ratio and
//     offset = dstMin − scale·srcMin, both in double-double arithmetic.
//   - Stage 2: extra destination dimensions yield zero rows, extra source
//     dimensions yield dropped columns.
//
// Errors: ErrNilMatrix. Complexity: O(srcDim·dstDim).
func CreateTransformEnvelopes(src, dst *Envelope) (Matrix, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("CreateTransformEnvelopes: %w", ErrNilMatrix)
	}
	srcDim, dstDim := src.Dimension(), dst.Dimension()
	m, err := NewExtended(dstDim+1, srcDim+1)
	if err != nil {
		return nil, fmt.Errorf("CreateTransformEnvelopes: %w", err)
	}
	_ = m.Set(dstDim, srcDim, 1)

	shared := srcDim
	if dstDim < shared {
		shared = dstDim
	}
	for dim := 0; dim < shared; dim++ {
		scale, offset := envelopeScaleOffset(src.Min(dim), src.Max(dim), dst.Min(dim), dst.Max(dim))
		m.setDD(dim, dim, &scale)
		m.setDD(dim, srcDim, &offset)
	}

	return m, nil
}

// CreateTransform combines axis reordering with envelope mapping: the result
// reorders and flips axes per the direction lists, then scales and shifts
// each target dimension so that the source envelope maps onto the
// destination envelope. For a flipped axis the offset anchors on the source
// maximum, so that the envelope's interior (not the raw ordinates) is mapped.
//
// Errors:
//   - ErrNilMatrix on a nil envelope.
//   - ErrDimensionMismatch when an envelope dimension disagrees with its
//     axis list length.
//   - Errors of CreateTransformAxes.
//
// Complexity: O(len(dst)·len(src)).
func CreateTransform(srcEnv *Envelope, srcAxes []AxisDirection, dstEnv *Envelope, dstAxes []AxisDirection) (Matrix, error) {
	if srcEnv == nil || dstEnv == nil {
		return nil, fmt.Errorf("CreateTransform: %w", ErrNilMatrix)
	}
	if srcEnv.Dimension() != len(srcAxes) {
		return nil, fmt.Errorf("CreateTransform: source envelope is %dD but %d axes given: %w",
			srcEnv.Dimension(), len(srcAxes), ErrDimensionMismatch)
	}
	if dstEnv.Dimension() != len(dstAxes) {
		return nil, fmt.Errorf("CreateTransform: destination envelope is %dD but %d axes given: %w",
			dstEnv.Dimension(), len(dstAxes), ErrDimensionMismatch)
	}
	base, err := CreateTransformAxes(srcAxes, dstAxes)
	if err != nil {
		return nil, fmt.Errorf("CreateTransform: %w", err)
	}

	srcDim := len(srcAxes)
	out, err := NewExtended(base.Rows(), base.Cols())
	if err != nil {
		return nil, fmt.Errorf("CreateTransform: %w", err)
	}
	_ = out.Set(len(dstAxes), srcDim, 1)

	for row := 0; row < len(dstAxes); row++ {
		for col := 0; col < srcDim; col++ {
			sign, _ := base.At(row, col)
			if sign == 0 {
				continue
			}
			// Anchor on srcMin for a direct axis, srcMax for a flipped one.
			srcAnchor, srcFar := srcEnv.Min(col), srcEnv.Max(col)
			if sign < 0 {
				srcAnchor, srcFar = srcFar, srcAnchor
			}
			scale, offset := envelopeScaleOffset(srcAnchor, srcFar, dstEnv.Min(row), dstEnv.Max(row))
			out.setDD(row, col, &scale)
			out.setDD(row, srcDim, &offset)
		}
	}

	return out, nil
}

// CreateDimensionSelect builds the conversion retaining only the listed
// source dimensions, in the listed order. Dimensions may be repeated or
// reordered; omitted dimensions are dropped.
// Errors: ErrInvalidDimensions on a non-positive source dimension count or
// an empty selection, ErrIndexOutOfBounds on a selection outside the source
// dimensions. Complexity: O(len(selected)·sourceDim).
func CreateDimensionSelect(sourceDim int, selected []int) (Matrix, error) {
	if sourceDim <= 0 || len(selected) == 0 {
		return nil, fmt.Errorf("CreateDimensionSelect: %w", ErrInvalidDimensions)
	}
	m, err := Create(len(selected)+1, sourceDim+1, nil)
	if err != nil {
		return nil, fmt.Errorf("CreateDimensionSelect: %w", err)
	}
	_ = m.Set(len(selected), sourceDim, 1)
	for row, dim := range selected {
		if dim < 0 || dim >= sourceDim {
			return nil, fmt.Errorf("CreateDimensionSelect: dimension %d of %d: %w",
				dim, sourceDim, ErrIndexOutOfBounds)
		}
		_ = m.Set(row, dim, 1)
	}

	return m, nil
}

// CreatePassThrough expands a conversion so that it applies to a middle
// block of coordinates while passing leading and trailing dimensions through
// unchanged.
// Implementation:
//   - Stage 1: identity coefficients for the firstAffected leading and the
//     numTrailing trailing dimensions.
//   - Stage 2: the sub-conversion's coefficients land in the middle block,
//     its translation column relocates to the overall last column, and its
//     homogeneous row relocates to the overall last row.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions on negative counts.
// Complexity: O(rows·cols) of the result.
func CreatePassThrough(firstAffected int, sub Matrix, numTrailing int) (Matrix, error) {
	if err := ValidateNotNil(sub); err != nil {
		return nil, fmt.Errorf("CreatePassThrough: %w", err)
	}
	if firstAffected < 0 || numTrailing < 0 {
		return nil, fmt.Errorf("CreatePassThrough: %w", ErrInvalidDimensions)
	}
	if firstAffected == 0 && numTrailing == 0 {
		return sub.Clone(), nil
	}
	expansion := firstAffected + numTrailing
	subSrc, subTgt := sub.Cols()-1, sub.Rows()-1
	nSrc, nTgt := subSrc+expansion, subTgt+expansion

	m, err := NewExtended(nTgt+1, nSrc+1)
	if err != nil {
		return nil, fmt.Errorf("CreatePassThrough: %w", err)
	}
	_ = m.Set(nTgt, nSrc, 1)
	for dim := 0; dim < firstAffected; dim++ {
		_ = m.Set(dim, dim, 1)
	}
	for dim := 0; dim < numTrailing; dim++ {
		_ = m.Set(firstAffected+subTgt+dim, firstAffected+subSrc+dim, 1)
	}

	var elt dd.DD
	for row := 0; row <= subTgt; row++ {
		// The sub-conversion's homogeneous row relocates to the last row.
		dstRow := firstAffected + row
		if row == subTgt {
			dstRow = nTgt
		}
		for col := 0; col <= subSrc; col++ {
			// Its translation column relocates to the last column.
			dstCol := firstAffected + col
			if col == subSrc {
				dstCol = nSrc
			}
			getDD(sub, row, col, &elt)
			m.setDD(dstRow, dstCol, &elt)
		}
	}

	return m, nil
}
