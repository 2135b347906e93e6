package scene

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bsyouness/frinder/pkg/projection"
)

// starField generates the decorative night-sky star directions: a fixed
// set of world-frame unit vectors above the horizon, deterministic in the
// seed. It is computed once per composer into an immutable table, so every
// frame (and every run with the same seed) sees the same sky.
func starField(seed int64, count int) []r3.Vec {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]r3.Vec, 0, count)
	for i := 0; i < count; i++ {
		az := rng.Float64() * 360
		// asin of a uniform variate distributes points uniformly over the
		// upper hemisphere instead of bunching them at the zenith.
		el := math.Asin(rng.Float64()) * 180 / math.Pi
		stars = append(stars, projection.DirectionFromHorizontal(az, el))
	}
	return stars
}
