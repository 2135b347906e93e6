package ephem

import (
	"math"
	"time"
)

// MoonPosition returns the moon's horizontal coordinates for an observer
// at the given latitude/longitude (degrees, east positive) at instant t.
// Mean elements carry a single leading perturbation term each; the rest of
// the pipeline is shared with SunPosition.
func MoonPosition(t time.Time, latDeg, lonDeg float64) Horizontal {
	d := daysSinceJ2000(t)

	// Mean longitude, mean anomaly, and argument of latitude, degrees.
	L := wrap360(218.316 + 13.176396*d)
	M := degToRad(wrap360(134.963 + 13.064993*d))
	F := degToRad(wrap360(93.272 + 13.229350*d))

	lambda := wrap360(L + 6.289*math.Sin(M))
	beta := 5.128 * math.Sin(F)

	ra, dec := eclipticToEquatorial(lambda, beta, obliquity(d))
	return equatorialToHorizontal(ra, dec, d, latDeg, lonDeg)
}
