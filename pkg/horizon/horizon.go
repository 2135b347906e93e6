// Package horizon derives the on-screen horizon line and the earth-fill
// region for the current device attitude.
//
// Two independent concerns live here. Polyline samples the elevation-zero
// circle and is used to stroke a thin horizon line; it degenerates when the
// device looks straight up or down. EarthRegion classifies the screen
// corners by casting rays back into world space and bisects the screen-rect
// edges for the sky/ground crossings, which stays correct at every
// attitude. The two may disagree slightly at extreme tilt, which is
// acceptable for a visual overlay.
package horizon

import (
	"github.com/bsyouness/frinder/pkg/projection"
)

// DefaultStepDeg is the azimuth sampling step for Polyline.
const DefaultStepDeg = 2.0

// DefaultBisectIterations bounds the edge search in EarthRegion. Twenty
// halvings resolve a screen edge to well under a pixel.
const DefaultBisectIterations = 20

// Polyline projects the elevation-zero circle in fixed azimuth steps and
// returns the samples that land inside the viewport, ordered so that
// consecutive points are adjacent on screen. The slice is empty when no
// part of the horizon is in view.
func Polyline(R projection.RotationMatrix, cam projection.Camera, stepDeg float64) []projection.ScreenPoint {
	if stepDeg <= 0 {
		stepDeg = DefaultStepDeg
	}

	type sample struct {
		az float64
		pt projection.ScreenPoint
	}
	var visible []sample
	for az := 0.0; az < 360.0; az += stepDeg {
		p := projection.Project(projection.DirectionFromHorizontal(az, 0), R, cam)
		if p != nil && cam.Screen.Contains(*p) {
			visible = append(visible, sample{az: az, pt: *p})
		}
	}
	if len(visible) == 0 {
		return nil
	}

	// The visible arc may wrap across azimuth 0. Start the polyline just
	// after the largest cyclic gap so consecutive points are neighbors.
	start := 0
	largest := 0.0
	for i := range visible {
		prev := visible[(i+len(visible)-1)%len(visible)]
		gap := visible[i].az - prev.az
		if gap < 0 {
			gap += 360
		}
		if gap > largest {
			largest = gap
			start = i
		}
	}

	line := make([]projection.ScreenPoint, 0, len(visible))
	for i := range visible {
		line = append(line, visible[(start+i)%len(visible)].pt)
	}
	return line
}

// EarthRegion returns the polygon of the viewport that should be filled as
// ground, walking the screen corners in order and bisecting each edge whose
// endpoints disagree. All four corners sky yields nil; all four earth
// yields the full viewport.
func EarthRegion(R projection.RotationMatrix, cam projection.Camera, iterations int) []projection.ScreenPoint {
	if iterations <= 0 {
		iterations = DefaultBisectIterations
	}

	w, h := cam.Screen.Width, cam.Screen.Height
	corners := [4]projection.ScreenPoint{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}

	isEarth := func(p projection.ScreenPoint) bool {
		return projection.ScreenRay(p, R, cam).Z < 0
	}

	var earth [4]bool
	for i, c := range corners {
		earth[i] = isEarth(c)
	}

	var region []projection.ScreenPoint
	for i := range corners {
		if earth[i] {
			region = append(region, corners[i])
		}
		j := (i + 1) % 4
		if earth[i] != earth[j] {
			region = append(region, bisectEdge(corners[i], corners[j], earth[i], isEarth, iterations))
		}
	}
	return region
}

// bisectEdge finds the earth/sky crossing on the segment from a to b, where
// a classifies as aEarth and b as the opposite.
func bisectEdge(a, b projection.ScreenPoint, aEarth bool, isEarth func(projection.ScreenPoint) bool, iterations int) projection.ScreenPoint {
	lo, hi := a, b
	for i := 0; i < iterations; i++ {
		mid := projection.ScreenPoint{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
		if isEarth(mid) == aEarth {
			lo = mid
		} else {
			hi = mid
		}
	}
	return projection.ScreenPoint{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
}
