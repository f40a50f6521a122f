// SPDX-License-Identifier: MIT
// Package transform: authalic latitude series for equal-area computations.

package transform

import "math"

// EqualArea precomputes the series used when converting between geodetic
// latitude φ and authalic latitude β on an ellipsoid. The forward direction
// goes through the qₘ integral, the reverse through a trigonometric series
// whose coefficients depend on the eccentricity only.
type EqualArea struct {
	eccentricity        float64
	eccentricitySquared float64

	// qmPolar is qₘ evaluated at the pole, the normalization factor giving
	// sinβ = qₘ(sinφ)/qmPolar.
	qmPolar float64

	// Coefficients of the reverse series φ = β + ci2·sin2β + ci4·sin4β +
	// ci8·sin8β, zero on a sphere.
	ci2, ci4, ci8 float64
}

// NewEqualArea prepares the series for the given ellipsoid.
func NewEqualArea(e Ellipsoid) EqualArea {
	e2 := e.EccentricitySquared()
	e4 := e2 * e2
	e6 := e2 * e4
	s := EqualArea{
		eccentricity:        math.Sqrt(e2),
		eccentricitySquared: e2,
		ci2:                 517./5040.*e6 + 31./180.*e4 + 1./3.*e2,
		ci4:                 251./3780.*e6 + 23./360.*e4,
		ci8:                 761. / 45360. * e6,
	}
	s.qmPolar = s.Qm(1)

	return s
}

// Qm evaluates qₘ(sinφ) = sinφ/(1−ℯ²sin²φ) + atanh(ℯ·sinφ)/ℯ, the quantity
// proportional to the area between the equator and latitude φ. On a sphere
// the limit 2·sinφ is returned.
func (s EqualArea) Qm(sinφ float64) float64 {
	if s.eccentricity == 0 {
		return 2 * sinφ
	}
	esinφ := s.eccentricity * sinφ

	return sinφ/(1-esinφ*esinφ) + math.Atanh(esinφ)/s.eccentricity
}

// QmDerivative evaluates dqₘ/dφ = 2·cosφ/(1−ℯ²sin²φ)².
func (s EqualArea) QmDerivative(sinφ, cosφ float64) float64 {
	den := 1 - s.eccentricitySquared*sinφ*sinφ

	return 2 * cosφ / (den * den)
}

// AuthalicLatitude converts geodetic latitude φ (radians) to authalic
// latitude β. Rounding can push the sine ratio slightly past ±1 near the
// poles; it is clamped before the arc sine.
func (s EqualArea) AuthalicLatitude(φ float64) float64 {
	sinβ := s.Qm(math.Sin(φ)) / s.qmPolar
	if sinβ > 1 {
		sinβ = 1
	} else if sinβ < -1 {
		sinβ = -1
	}

	return math.Asin(sinβ)
}

// Latitude converts the sine of an authalic latitude back to geodetic
// latitude through the reverse series. The truncation error is below 1e-7
// radians for eccentricities of geodetic interest.
func (s EqualArea) Latitude(sinβ float64) float64 {
	β := math.Asin(sinβ)

	return β + s.ci2*math.Sin(2*β) + s.ci4*math.Sin(4*β) + s.ci8*math.Sin(8*β)
}
