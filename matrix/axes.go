// SPDX-License-Identifier: MIT
// Package matrix: axis directions.
//
// AxisDirection names the orientation of a coordinate-system axis. The
// factory uses directions to derive change-of-axis matrices: two directions
// are colinear when they share the same absolute direction, and they map with
// coefficient +1 or −1 depending on whether they point the same way.

package matrix

// AxisDirection identifies the direction of increasing ordinate values
// along one axis of a coordinate system.
type AxisDirection int

const (
	// North is the direction of increasing latitude.
	North AxisDirection = iota
	// East is the direction of increasing longitude.
	East
	// South is the direction of decreasing latitude.
	South
	// West is the direction of decreasing longitude.
	West
	// Up is the direction of increasing height.
	Up
	// Down is the direction of decreasing height.
	Down
	// GeocentricX points from Earth center to the prime meridian on the equator.
	GeocentricX
	// GeocentricY points from Earth center to 90°E on the equator.
	GeocentricY
	// GeocentricZ points from Earth center to the North pole.
	GeocentricZ
	// Future is the direction of increasing time.
	Future
	// Past is the direction of decreasing time.
	Past
)

// axisNames is indexed by AxisDirection.
var axisNames = [...]string{
	"North",
	"East",
	"South",
	"West",
	"Up",
	"Down",
	"Geocentric X",
	"Geocentric Y",
	"Geocentric Z",
	"Future",
	"Past",
}

// String returns the conventional name of the direction.
func (d AxisDirection) String() string {
	if d < 0 || int(d) >= len(axisNames) {
		return "Unknown"
	}

	return axisNames[d]
}

// Opposite returns the direction pointing the other way, and whether one
// exists. Geocentric directions have no opposite constant.
func (d AxisDirection) Opposite() (AxisDirection, bool) {
	switch d {
	case North:
		return South, true
	case South:
		return North, true
	case East:
		return West, true
	case West:
		return East, true
	case Up:
		return Down, true
	case Down:
		return Up, true
	case Future:
		return Past, true
	case Past:
		return Future, true
	}

	return d, false
}

// Absolute maps the direction onto the representative of its colinear pair:
// South→North, West→East, Down→Up, Past→Future; everything else maps to
// itself. Two directions are colinear exactly when their absolutes are equal.
func (d AxisDirection) Absolute() AxisDirection {
	switch d {
	case South:
		return North
	case West:
		return East
	case Down:
		return Up
	case Past:
		return Future
	}

	return d
}
