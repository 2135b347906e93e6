package ephem

import (
	"math"
	"time"
)

// SunPosition returns the sun's horizontal coordinates for an observer at
// the given latitude/longitude (degrees, east positive) at instant t.
func SunPosition(t time.Time, latDeg, lonDeg float64) Horizontal {
	d := daysSinceJ2000(t)

	// Mean longitude and mean anomaly of the sun, degrees.
	L := wrap360(280.460 + 0.9856474*d)
	g := degToRad(wrap360(357.528 + 0.9856003*d))

	// Ecliptic longitude with the equation-of-center correction.
	lambda := wrap360(L + 1.915*math.Sin(g) + 0.020*math.Sin(2*g))

	ra, dec := eclipticToEquatorial(lambda, 0, obliquity(d))
	return equatorialToHorizontal(ra, dec, d, latDeg, lonDeg)
}

// IsDaytime reports whether the sun is above the civil-twilight threshold
// for the given observer at instant t.
func IsDaytime(t time.Time, latDeg, lonDeg float64) bool {
	return SunPosition(t, latDeg, lonDeg).ElevationDeg > CivilTwilightElevation
}
