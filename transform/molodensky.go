// SPDX-License-Identifier: MIT
// Package transform: Molodensky datum shift, complete and abridged variants.

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georef/matrix"
)

// angularScale compensates the systematic bias introduced by evaluating the
// shift in angular units; the value is calibrated against geocentric
// translation results.
const angularScale = 1.00000000000391744

// EPSG parameter names describing a Molodensky sequence, plus the
// implementation-specific "dim" entry giving the number of source dimensions.
const (
	paramDim          = "dim"
	paramSrcSemiMajor = "src_semi_major"
	paramSrcSemiMinor = "src_semi_minor"
	paramTgtSemiMajor = "tgt_semi_major"
	paramTgtSemiMinor = "tgt_semi_minor"
	paramTX           = "X-axis translation"
	paramTY           = "Y-axis translation"
	paramTZ           = "Z-axis translation"
	paramAbridged     = "abridged"
)

// Molodensky shifts geodetic coordinates (λ, φ[, h]) from one datum to
// another directly in the geographic domain, without the detour through
// geocentric coordinates. The kernel works in radians and metres; the
// surrounding degree conversions live in its contextual parameters and are
// assembled by Pipeline.
//
// The abridged variant drops the ellipsoidal height from the formulas, which
// is the classical EPSG 9605 method; the complete variant (EPSG 9604) keeps
// it.
type Molodensky struct {
	source   Ellipsoid
	target   Ellipsoid
	source3D bool
	target3D bool

	// Geocentric translation in metres.
	tX, tY, tZ float64

	abridged bool

	// Derived constants of the source ellipsoid and the datum change:
	// semi-major axis a, eccentricity squared ℯ², Δa = target.a − source.a
	// and the "modified flattening difference" Δfm used by both variants.
	semiMajor           float64
	eccentricitySquared float64
	da                  float64
	dfmod               float64

	context *ContextualParameters
}

// NewMolodensky builds the datum shift from source to target with the given
// geocentric translation. The 3D flags tell whether an ellipsoidal height is
// present on each side; a missing source height is taken as zero, a missing
// target height is dropped.
// Errors: those of NewContextualParameters.
func NewMolodensky(source, target Ellipsoid, source3D, target3D bool,
	tX, tY, tZ float64, abridged bool) (*Molodensky, error) {
	a := source.SemiMajor()
	b := source.SemiMinor()
	da := source.SemiMajorDifference(target)
	df := source.FlatteningDifference(target)

	var dfmod float64
	if abridged {
		dfmod = a*df + (a-b)*(da/a)
	} else {
		dfmod = b * df
	}

	descriptor := "Molodensky"
	if abridged {
		descriptor = "Abridged Molodensky"
	}
	srcDim, tgtDim := 2, 2
	if source3D {
		srcDim = 3
	}
	if target3D {
		tgtDim = 3
	}
	context, err := NewContextualParameters(descriptor, srcDim, tgtDim)
	if err != nil {
		return nil, fmt.Errorf("NewMolodensky: %w", err)
	}
	if err = context.NormalizeGeographicInputs(0); err != nil {
		return nil, fmt.Errorf("NewMolodensky: %w", err)
	}
	if err = context.DenormalizeGeographicOutputs(0); err != nil {
		return nil, fmt.Errorf("NewMolodensky: %w", err)
	}
	record := []Parameter{
		{paramDim, float64(srcDim)},
		{paramSrcSemiMajor, a},
		{paramSrcSemiMinor, b},
		{paramTgtSemiMajor, target.SemiMajor()},
		{paramTgtSemiMinor, target.SemiMinor()},
		{paramTX, tX},
		{paramTY, tY},
		{paramTZ, tZ},
		{paramAbridged, boolParam(abridged)},
	}
	for _, p := range record {
		if err = context.SetParameter(p.Name, p.Value); err != nil {
			return nil, fmt.Errorf("NewMolodensky: %w", err)
		}
	}

	return &Molodensky{
		source:              source,
		target:              target,
		source3D:            source3D,
		target3D:            target3D,
		tX:                  tX,
		tY:                  tY,
		tZ:                  tZ,
		abridged:            abridged,
		semiMajor:           a,
		eccentricitySquared: source.EccentricitySquared(),
		da:                  da,
		dfmod:               dfmod,
		context:             context,
	}, nil
}

// boolParam encodes a boolean as the 0/1 convention of parameter records.
func boolParam(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// SourceDim returns 3 when a source ellipsoidal height is expected, else 2.
func (m *Molodensky) SourceDim() int {
	if m.source3D {
		return 3
	}

	return 2
}

// TargetDim returns 3 when a target ellipsoidal height is produced, else 2.
func (m *Molodensky) TargetDim() int {
	if m.target3D {
		return 3
	}

	return 2
}

// SourceEllipsoid returns the ellipsoid of the source datum.
func (m *Molodensky) SourceEllipsoid() Ellipsoid {
	return m.source
}

// TargetEllipsoid returns the ellipsoid of the target datum.
func (m *Molodensky) TargetEllipsoid() Ellipsoid {
	return m.target
}

// IsAbridged reports whether the abridged formulas are used.
func (m *Molodensky) IsAbridged() bool {
	return m.abridged
}

// Context returns the contextual parameters describing the complete
// degrees → kernel → degrees sequence.
func (m *Molodensky) Context() *ContextualParameters {
	return m.context
}

// Parameters returns the recorded parameter values of the sequence.
func (m *Molodensky) Parameters() []Parameter {
	return m.context.Parameters()
}

// Transform evaluates the kernel at one (λ, φ[, h]) tuple, angles in
// radians, height in metres.
// Implementation:
//   - Stage 1: radii of curvature ν (prime vertical) and ρ (meridian) at φ,
//     inflated by h in the complete variant.
//   - Stage 2: the translation projected on the local frame gives the angular
//     shifts, scaled by angularScale.
//   - Stage 3 (derivate): analytic Jacobian, sharing the intermediate terms
//     of stage 2. The abridged and complete variants differ in the ∂/∂φ
//     corrections and, for the complete 3D case, in the ∂/∂h column.
//
// Errors: ErrDimensionMismatch on a wrong tuple length.
// Complexity: O(1).
func (m *Molodensky) Transform(src []float64, derivate bool) ([]float64, matrix.Matrix, error) {
	if err := validateInput(src, m.SourceDim()); err != nil {
		return nil, nil, fmt.Errorf("Molodensky.Transform: %w", err)
	}
	λ, φ := src[0], src[1]
	h := 0.0
	if m.source3D {
		h = src[2]
	}
	sinλ, cosλ := math.Sincos(λ)
	sinφ, cosφ := math.Sincos(φ)
	sin2φ := sinφ * sinφ

	ν2den := 1 - m.eccentricitySquared*sin2φ
	νden := math.Sqrt(ν2den)
	ρden := ν2den * νden
	ρ := m.semiMajor * (1 - m.eccentricitySquared) / ρden
	ν := m.semiMajor / νden
	t := m.dfmod * 2
	if !m.abridged {
		ρ += h
		ν += h
		t = t*(0.5/νden+0.5/ρden) + m.da*m.eccentricitySquared/νden
	}
	spcλ := m.tY*sinλ + m.tX*cosλ
	cmsλ := m.tY*cosλ - m.tX*sinλ
	cmsφ := (m.tZ+t*sinφ)*cosφ - spcλ*sinφ
	scaleX := angularScale / (ν * cosφ)
	scaleY := angularScale / ρ

	dst := make([]float64, m.TargetDim())
	dst[0] = λ + cmsλ*scaleX
	dst[1] = φ + cmsφ*scaleY
	if m.target3D {
		t1 := m.dfmod * sin2φ
		t2 := m.da
		if !m.abridged {
			t1 /= νden
			t2 *= νden
		}
		dst[2] = h + spcλ*cosφ + m.tZ*sinφ + t1 - t2
	}
	if !derivate {
		return dst, nil, nil
	}

	jac, err := matrix.CreateDiagonal(m.TargetDim(), m.SourceDim())
	if err != nil {
		return nil, nil, fmt.Errorf("Molodensky.Transform: %w", err)
	}
	sinφcosφ := sinφ * cosφ
	dν := m.eccentricitySquared * sinφcosφ / ν2den
	dν3ρ := 3 * dν * (1 - m.eccentricitySquared) / ν2den
	dYdλ := cmsλ * sinφ
	dZdλ := cmsλ * cosφ
	dXdφ := dYdλ / cosφ
	dYdφ := -m.tZ*sinφ - cosφ*spcλ + t*(1-2*sin2φ)
	dZdφ := m.tZ*cosφ - sinφ*spcλ
	if m.abridged {
		dXdφ -= cmsλ * dν
		dYdφ -= cmsφ * dν3ρ
		dZdφ += t * cosφ * sinφ
	} else {
		dρ := dν3ρ * νden * (m.semiMajor / ρ)
		dXdφ -= dν * cmsλ * m.semiMajor / (νden * ν)
		dYdφ -= dρ*dZdφ - (m.dfmod*(dν*2/(1-m.eccentricitySquared)+(1+1/ν2den)*(dν-dρ))+
			m.da*(dν+1)*m.eccentricitySquared)*sinφcosφ/νden
		if m.source3D {
			dXdh := cmsλ / ν
			dYdh := -cmsφ / ρ
			_ = jac.Set(0, 2, -dXdh*scaleX)
			_ = jac.Set(1, 2, +dYdh*scaleY)
		}
		t1 := m.dfmod * (dν*sin2φ + 2*sinφcosφ)
		t2 := m.da * dν
		dZdφ += t1/νden + t2*νden
	}
	_ = jac.Set(0, 0, 1-spcλ*scaleX)
	_ = jac.Set(1, 1, 1+dYdφ*scaleY)
	_ = jac.Set(0, 1, +dXdφ*scaleX)
	_ = jac.Set(1, 0, -dYdλ*scaleY)
	if m.target3D {
		_ = jac.Set(2, 0, dZdλ)
		_ = jac.Set(2, 1, dZdφ)
	}

	return dst, jac, nil
}

// Inverse returns the shift in the opposite direction: ellipsoids and 3D
// flags swapped, translation negated, same variant. Molodensky inversion is
// approximate by nature; round-tripping a point reproduces it to within the
// accuracy of the method itself, not to machine precision.
func (m *Molodensky) Inverse() (*Molodensky, error) {
	inv, err := NewMolodensky(m.target, m.source, m.target3D, m.source3D,
		-m.tX, -m.tY, -m.tZ, m.abridged)
	if err != nil {
		return nil, fmt.Errorf("Molodensky.Inverse: %w", err)
	}

	return inv, nil
}

// Pipeline assembles the complete degrees → radians → shift → degrees
// transform and freezes the contextual parameters.
func (m *Molodensky) Pipeline() (Transform, error) {
	pipeline, err := m.context.Concatenation(m)
	if err != nil {
		return nil, fmt.Errorf("Molodensky.Pipeline: %w", err)
	}

	return pipeline, nil
}

// Equal reports whether two shifts apply the same datum change: same
// ellipsoids, dimensions, translation and variant.
func (m *Molodensky) Equal(other *Molodensky) bool {
	if m == other {
		return true
	}
	if other == nil {
		return false
	}

	return m.source == other.source && m.target == other.target &&
		m.source3D == other.source3D && m.target3D == other.target3D &&
		m.tX == other.tX && m.tY == other.tY && m.tZ == other.tZ &&
		m.abridged == other.abridged
}

// Hash returns a key identifying the datum change, independent of the
// recorded parameter order. The two variants of the same change hash
// differently.
func (m *Molodensky) Hash() uint64 {
	code := math.Float64bits(m.da) + math.Float64bits(m.dfmod) +
		31*(math.Float64bits(m.tX)+31*(math.Float64bits(m.tY)+31*math.Float64bits(m.tZ)))
	if m.abridged {
		code = ^code
	}

	return code
}
