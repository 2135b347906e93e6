package horizon

import (
	"math"
	"testing"

	"github.com/bsyouness/frinder/pkg/projection"
)

var testCam = projection.Camera{
	HFOVDeg: 60,
	VFOVDeg: 90,
	Screen:  projection.Size{Width: 400, Height: 800},
}

func TestPolylineUpright(t *testing.T) {
	R := projection.RotationFromHeadingPitch(0, 0)

	line := Polyline(R, testCam, DefaultStepDeg)
	if len(line) == 0 {
		t.Fatal("upright device should see the horizon")
	}

	// With no pitch and no roll the horizon is the vertical midline.
	for _, p := range line {
		if math.Abs(p.Y-400) > 1 {
			t.Errorf("horizon sample at y=%.2f, expected 400", p.Y)
		}
		if !testCam.Screen.Contains(p) {
			t.Errorf("sample %+v outside viewport", p)
		}
	}

	// Consecutive points are screen neighbors even though the visible arc
	// wraps across azimuth 0.
	for i := 1; i < len(line); i++ {
		if projection.Distance(line[i-1], line[i]) > 50 {
			t.Errorf("polyline jump between %+v and %+v", line[i-1], line[i])
		}
	}
}

func TestPolylineDegeneratesLookingUp(t *testing.T) {
	// Looking straight up, every elevation-zero direction is exactly on the
	// image plane, so the sampling approach finds nothing. The earth-fill
	// path below is the one that must stay correct here.
	R := projection.RotationFromHeadingPitch(0, 90)
	if line := Polyline(R, testCam, DefaultStepDeg); len(line) != 0 {
		t.Errorf("expected empty polyline at zenith, got %d points", len(line))
	}
}

func TestEarthRegionUpright(t *testing.T) {
	R := projection.RotationFromHeadingPitch(0, 0)

	region := EarthRegion(R, testCam, DefaultBisectIterations)
	if len(region) != 4 {
		t.Fatalf("expected 4-point region, got %d: %+v", len(region), region)
	}

	// Marching order: crossing on the right edge, bottom-right corner,
	// bottom-left corner, crossing on the left edge.
	if math.Abs(region[0].X-400) > 1e-6 || math.Abs(region[0].Y-400) > 1 {
		t.Errorf("right-edge crossing = %+v, expected (400, 400)", region[0])
	}
	if region[1] != (projection.ScreenPoint{X: 400, Y: 800}) {
		t.Errorf("expected bottom-right corner, got %+v", region[1])
	}
	if region[2] != (projection.ScreenPoint{X: 0, Y: 800}) {
		t.Errorf("expected bottom-left corner, got %+v", region[2])
	}
	if math.Abs(region[3].X) > 1e-6 || math.Abs(region[3].Y-400) > 1 {
		t.Errorf("left-edge crossing = %+v, expected (0, 400)", region[3])
	}
}

func TestEarthRegionExtremes(t *testing.T) {
	// Straight down: the whole screen is ground.
	down := EarthRegion(projection.RotationFromHeadingPitch(0, -90), testCam, DefaultBisectIterations)
	if len(down) != 4 {
		t.Fatalf("looking down: expected full-screen region, got %d points", len(down))
	}
	for _, p := range down {
		onCorner := (p.X == 0 || p.X == 400) && (p.Y == 0 || p.Y == 800)
		if !onCorner {
			t.Errorf("looking down: %+v is not a viewport corner", p)
		}
	}

	// Straight up: no ground anywhere.
	up := EarthRegion(projection.RotationFromHeadingPitch(0, 90), testCam, DefaultBisectIterations)
	if len(up) != 0 {
		t.Errorf("looking up: expected empty region, got %+v", up)
	}
}

func TestEarthRegionPitchedDown(t *testing.T) {
	// Pitching the camera down moves the horizon up the screen, growing the
	// earth region; the crossings must sit above the midline.
	R := projection.RotationFromHeadingPitch(0, -20)
	region := EarthRegion(R, testCam, DefaultBisectIterations)
	if len(region) != 4 {
		t.Fatalf("expected 4-point region, got %d", len(region))
	}
	for _, p := range region {
		isCrossing := p.Y < 799 && p.Y > 1 // not a corner
		if isCrossing && p.Y >= 400 {
			t.Errorf("crossing %+v should sit above the midline when pitched down", p)
		}
	}
}

func TestPolylineFollowsPitch(t *testing.T) {
	// Pitch up by a quarter of the vFOV: the horizon drops a quarter of the
	// screen below center.
	R := projection.RotationFromHeadingPitch(0, 22.5)
	line := Polyline(R, testCam, DefaultStepDeg)
	if len(line) == 0 {
		t.Fatal("horizon should still be visible at 22.5° pitch")
	}
	for _, p := range line {
		if math.Abs(p.Y-600) > 2 {
			t.Errorf("sample y=%.2f, expected 600", p.Y)
		}
	}
}
