// Package geomath provides the angular and great-circle math used by the
// radar projection engine: bearings, spherical distances, angle wrapping,
// field-of-view tests, and elevation models for over-the-horizon targets.
//
// Conventions: angles crossing the package boundary are degrees, with
// bearings in [0, 360), 0 = north, clockwise positive. Radians are used
// internally and wherever a function documents them. Malformed input such
// as NaN propagates as NaN; nothing in this package returns an error.
package geomath

import "math"

// EarthRadius is the mean Earth radius in meters, used for all spherical
// approximations in this package.
const EarthRadius = 6371000.0

// MaxChordDistance is the greatest meaningful great-circle distance on the
// spherical Earth model (half the circumference, ~20,015 km).
const MaxChordDistance = math.Pi * EarthRadius

// Point is an immutable geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// Bearing returns the initial great-circle bearing from one point to
// another, in degrees [0, 360). The bearing from a point to itself is 0
// (atan2(0,0) convention), never NaN.
func Bearing(from, to Point) float64 {
	lat1 := degToRad(from.Lat)
	lat2 := degToRad(to.Lat)
	dLon := degToRad(to.Lon - from.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := radToDeg(math.Atan2(y, x))
	return math.Mod(deg+360, 360)
}

// Distance returns the great-circle distance between two points in meters
// using the haversine formula, which stays numerically stable at small
// separations. The distance from a point to itself is exactly 0: the sqrt
// argument is clamped to [0, 1] so floating-point drift cannot produce NaN.
func Distance(from, to Point) float64 {
	lat1 := degToRad(from.Lat)
	lat2 := degToRad(to.Lat)
	dLat := degToRad(to.Lat - from.Lat)
	dLon := degToRad(to.Lon - from.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	if h > 1 {
		h = 1
	} else if h < 0 {
		h = 0
	}
	return 2 * math.Asin(math.Sqrt(h)) * EarthRadius
}

// NormalizeAngle wraps an angle in degrees into [-180, 180] by repeated
// ±360 steps. NaN wraps to NaN.
func NormalizeAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}
	return deg
}

// RelativeBearing returns the signed offset from a device heading to a
// target bearing, in degrees [-180, 180]. Positive means the target is to
// the device's right, negative to its left.
func RelativeBearing(targetDeg, headingDeg float64) float64 {
	return NormalizeAngle(targetDeg - headingDeg)
}

// WithinHorizontalFOV reports whether a target bearing falls inside a
// horizontal field of view centered on the heading. The test is inclusive
// at the exact edge.
func WithinHorizontalFOV(bearingDeg, headingDeg, fovDeg float64) bool {
	return math.Abs(RelativeBearing(bearingDeg, headingDeg)) <= fovDeg/2
}

// TrueElevationAngle returns the elevation in radians of the straight-line
// chord through the spherical Earth to a target at great-circle distance d
// meters. The result is in [-π/2, 0]: 0 at d=0, saturating at -π/2 from the
// antipodal distance onward.
func TrueElevationAngle(distanceM float64) float64 {
	theta := distanceM / EarthRadius
	half := theta / 2
	if half > math.Pi/2 {
		half = math.Pi / 2
	}
	return -half
}

// Defaults for ScaledElevationAngle, matching the legacy linear projection
// mode: full compression at half the Earth's circumference, floored at -20°.
const (
	ScaledElevationMaxDistance = 20000000.0
	ScaledElevationMaxDegrees  = 20.0
)

// ScaledElevationAngle returns a display-compressed elevation in radians,
// linear in min(d/maxDistance, 1) and floored at -maxAngleDeg. It is
// independent of TrueElevationAngle and monotonically non-increasing in
// distance.
func ScaledElevationAngle(distanceM, maxDistanceM, maxAngleDeg float64) float64 {
	frac := distanceM / maxDistanceM
	if frac > 1 {
		frac = 1
	}
	return -degToRad(frac * maxAngleDeg)
}
