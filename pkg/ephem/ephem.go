// Package ephem provides low-precision solar and lunar ephemeris
// calculations for visual placement in the radar view. Both bodies share
// one pipeline: mean orbital elements with leading perturbation terms give
// an ecliptic position, which is rotated to equatorial coordinates and then
// transformed to the observer's horizontal frame via the local sidereal
// time and hour angle. Accuracy is on the arc-minute scale, adequate for
// drawing a sun or moon icon, not for navigation.
package ephem

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Horizontal is a topocentric direction: compass azimuth in degrees
// [0, 360) measured clockwise from north, and elevation in degrees above
// (+) or below (-) the local horizontal plane.
type Horizontal struct {
	AzimuthDeg   float64
	ElevationDeg float64
}

// CivilTwilightElevation is the solar elevation in degrees below which the
// sky is treated as night.
const CivilTwilightElevation = -6.0

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// wrap360 wraps an angle in degrees to [0, 360).
func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// daysSinceJ2000 returns the fractional day count from the J2000.0 epoch.
func daysSinceJ2000(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - 2451545.0
}

// obliquity returns the mean obliquity of the ecliptic in degrees for a
// day offset from J2000.0. The linear term is all the precision the rest
// of this pipeline deserves.
func obliquity(d float64) float64 {
	return 23.439 - 0.0000004*d
}

// eclipticToEquatorial converts ecliptic longitude/latitude (degrees) to
// right ascension and declination (degrees) for obliquity eps (degrees).
func eclipticToEquatorial(lambdaDeg, betaDeg, epsDeg float64) (raDeg, decDeg float64) {
	lam := degToRad(lambdaDeg)
	bet := degToRad(betaDeg)
	eps := degToRad(epsDeg)

	sinDec := math.Sin(bet)*math.Cos(eps) + math.Cos(bet)*math.Sin(eps)*math.Sin(lam)
	dec := math.Asin(sinDec)

	y := math.Sin(lam)*math.Cos(eps) - math.Tan(bet)*math.Sin(eps)
	ra := math.Atan2(y, math.Cos(lam))

	return wrap360(radToDeg(ra)), radToDeg(dec)
}

// greenwichMeanSiderealTime returns GMST in degrees for a day offset from
// J2000.0, using the linear approximation (no nutation).
func greenwichMeanSiderealTime(d float64) float64 {
	return wrap360(280.46061837 + 360.98564736629*d)
}

// equatorialToHorizontal transforms right ascension/declination (degrees)
// to the observer's horizontal frame at the given instant and location.
func equatorialToHorizontal(raDeg, decDeg, d, latDeg, lonDeg float64) Horizontal {
	lst := greenwichMeanSiderealTime(d) + lonDeg
	haRad := degToRad(wrap360(lst - raDeg))

	phi := degToRad(latDeg)
	dec := degToRad(decDeg)

	sinEl := math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(haRad)
	if sinEl > 1 {
		sinEl = 1
	} else if sinEl < -1 {
		sinEl = -1
	}
	el := math.Asin(sinEl)

	// Azimuth westward from south, then rotated to compass convention.
	az := math.Atan2(math.Sin(haRad), math.Cos(haRad)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi))

	return Horizontal{
		AzimuthDeg:   wrap360(radToDeg(az) + 180),
		ElevationDeg: radToDeg(el),
	}
}
