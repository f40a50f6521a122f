// SPDX-License-Identifier: MIT
// Package transform: reference ellipsoids.

package transform

import "fmt"

// Ellipsoid is an oblate reference ellipsoid described by its semi-major and
// semi-minor axis lengths, both in metres.
type Ellipsoid struct {
	semiMajor float64
	semiMinor float64
}

// NewEllipsoid builds an ellipsoid from explicit axis lengths.
// Errors: ErrBadEllipsoid unless semiMajor ≥ semiMinor > 0.
func NewEllipsoid(semiMajor, semiMinor float64) (Ellipsoid, error) {
	if !(semiMinor > 0 && semiMajor >= semiMinor) {
		return Ellipsoid{}, fmt.Errorf("NewEllipsoid(%g, %g): %w", semiMajor, semiMinor, ErrBadEllipsoid)
	}

	return Ellipsoid{semiMajor: semiMajor, semiMinor: semiMinor}, nil
}

// NewEllipsoidFromInverseFlattening builds an ellipsoid from its semi-major
// axis and inverse flattening 1/f.
// Errors: ErrBadEllipsoid on non-positive input.
func NewEllipsoidFromInverseFlattening(semiMajor, inverseFlattening float64) (Ellipsoid, error) {
	if !(semiMajor > 0 && inverseFlattening > 0) {
		return Ellipsoid{}, fmt.Errorf("NewEllipsoidFromInverseFlattening(%g, %g): %w",
			semiMajor, inverseFlattening, ErrBadEllipsoid)
	}

	return Ellipsoid{
		semiMajor: semiMajor,
		semiMinor: semiMajor * (1 - 1/inverseFlattening),
	}, nil
}

// WGS84 returns the World Geodetic System 1984 ellipsoid.
func WGS84() Ellipsoid {
	e, _ := NewEllipsoidFromInverseFlattening(6378137, 298.257223563)

	return e
}

// WGS72 returns the World Geodetic System 1972 ellipsoid.
func WGS72() Ellipsoid {
	e, _ := NewEllipsoidFromInverseFlattening(6378135, 298.26)

	return e
}

// International1924 is the ellipsoid of the European Datum 1950.
func International1924() Ellipsoid {
	e, _ := NewEllipsoidFromInverseFlattening(6378388, 297)

	return e
}

// SemiMajor returns the semi-major axis length in metres.
func (e Ellipsoid) SemiMajor() float64 {
	return e.semiMajor
}

// SemiMinor returns the semi-minor axis length in metres.
func (e Ellipsoid) SemiMinor() float64 {
	return e.semiMinor
}

// Flattening returns (a−b)/a.
func (e Ellipsoid) Flattening() float64 {
	return (e.semiMajor - e.semiMinor) / e.semiMajor
}

// EccentricitySquared returns ℯ² = (a²−b²)/a².
func (e Ellipsoid) EccentricitySquared() float64 {
	ratio := e.semiMinor / e.semiMajor

	return 1 - ratio*ratio
}

// SemiMajorDifference returns other.a − e.a, the Δa term of datum shift
// formulas when shifting from e to other.
func (e Ellipsoid) SemiMajorDifference(other Ellipsoid) float64 {
	return other.semiMajor - e.semiMajor
}

// FlatteningDifference returns other.f − e.f, the Δf term of datum shift
// formulas when shifting from e to other.
func (e Ellipsoid) FlatteningDifference(other Ellipsoid) float64 {
	return other.Flattening() - e.Flattening()
}
