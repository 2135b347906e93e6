// Package projection maps world-frame direction vectors onto device screen
// coordinates using the device's attitude rotation matrix.
//
// World vectors live in a north-west-up (NWU) right-handed frame: x north,
// y west, z up. The device frame has x right, y up, and z pointing out of
// the screen toward the viewer, so the camera looks along -z. The rotation
// matrix supplied by the motion subsystem maps world vectors into the
// device frame; this package only ever reads it.
package projection

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bsyouness/frinder/pkg/geomath"
)

// ScreenPoint is a position in pixels with the origin at the top-left and
// y increasing downward. Points are not clamped to the viewport; callers
// decide whether off-screen coordinates are meaningful.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a viewport extent in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether a point lies inside the viewport rectangle.
func (s Size) Contains(p ScreenPoint) bool {
	return p.X >= 0 && p.X <= s.Width && p.Y >= 0 && p.Y <= s.Height
}

// Center returns the viewport's central point.
func (s Size) Center() ScreenPoint {
	return ScreenPoint{X: s.Width / 2, Y: s.Height / 2}
}

// Camera carries the angular extent of the view and the viewport it maps to.
type Camera struct {
	HFOVDeg float64
	VFOVDeg float64
	Screen  Size
}

// RotationMatrix is a row-major orthonormal 3×3 matrix mapping world-frame
// vectors into the device frame.
type RotationMatrix [3][3]float64

// Apply returns R·v, transforming a world vector into the device frame.
func (R RotationMatrix) Apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: R[0][0]*v.X + R[0][1]*v.Y + R[0][2]*v.Z,
		Y: R[1][0]*v.X + R[1][1]*v.Y + R[1][2]*v.Z,
		Z: R[2][0]*v.X + R[2][1]*v.Y + R[2][2]*v.Z,
	}
}

// ApplyTranspose returns Rᵗ·v, transforming a device vector back into the
// world frame. For an orthonormal R the transpose is the inverse.
func (R RotationMatrix) ApplyTranspose(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: R[0][0]*v.X + R[1][0]*v.Y + R[2][0]*v.Z,
		Y: R[0][1]*v.X + R[1][1]*v.Y + R[2][1]*v.Z,
		Z: R[0][2]*v.X + R[1][2]*v.Y + R[2][2]*v.Z,
	}
}

// RotationFromHeadingPitch builds the attitude matrix of a device held
// upright (no roll), compass heading in degrees clockwise from north and
// pitch in degrees above the horizon. Real attitudes come from the motion
// sensors; this constructor exists for simulators and tests.
func RotationFromHeadingPitch(headingDeg, pitchDeg float64) RotationMatrix {
	forward := DirectionFromHorizontal(headingDeg, pitchDeg)
	up := DirectionFromHorizontal(headingDeg, pitchDeg+90)
	right := r3.Cross(forward, up)

	return RotationMatrix{
		{right.X, right.Y, right.Z},
		{up.X, up.Y, up.Z},
		{-forward.X, -forward.Y, -forward.Z},
	}
}

// Project maps a world direction onto the screen. It returns nil when the
// direction is not in front of the device (device-frame z ≥ 0): absence is
// the routine outcome for most entities most frames, never a degenerate
// coordinate.
func Project(world r3.Vec, R RotationMatrix, cam Camera) *ScreenPoint {
	dv := R.Apply(world)
	if dv.Z >= 0 {
		return nil
	}

	angleX := math.Atan2(dv.X, -dv.Z)
	angleY := math.Atan2(dv.Y, -dv.Z)

	halfW := cam.Screen.Width / 2
	halfH := cam.Screen.Height / 2
	halfHFOV := degToRad(cam.HFOVDeg) / 2
	halfVFOV := degToRad(cam.VFOVDeg) / 2

	return &ScreenPoint{
		X: halfW + (angleX/halfHFOV)*halfW,
		Y: halfH - (angleY/halfVFOV)*halfH,
	}
}

// ScreenRay reconstructs the world-frame ray looking through a screen
// point: the inverse of Project up to normalization. Used for classifying
// pixels as earth or sky.
func ScreenRay(p ScreenPoint, R RotationMatrix, cam Camera) r3.Vec {
	halfW := cam.Screen.Width / 2
	halfH := cam.Screen.Height / 2

	angleX := (p.X - halfW) / halfW * degToRad(cam.HFOVDeg) / 2
	angleY := (halfH - p.Y) / halfH * degToRad(cam.VFOVDeg) / 2

	device := r3.Vec{X: math.Tan(angleX), Y: math.Tan(angleY), Z: -1}
	return r3.Unit(R.ApplyTranspose(device))
}

// DirectionVector returns the unit NWU direction from an observer to a
// target on the Earth's surface, combining the great-circle bearing with
// the chord elevation model: distant targets dip below the horizon.
func DirectionVector(from, to geomath.Point) r3.Vec {
	az := degToRad(geomath.Bearing(from, to))
	el := geomath.TrueElevationAngle(geomath.Distance(from, to))

	// y is negated: azimuth runs clockwise from north but the y axis is west.
	return r3.Vec{
		X: math.Cos(el) * math.Cos(az),
		Y: -math.Cos(el) * math.Sin(az),
		Z: math.Sin(el),
	}
}

// DirectionFromHorizontal returns the unit NWU vector for a compass
// azimuth and elevation, both in degrees.
func DirectionFromHorizontal(azimuthDeg, elevationDeg float64) r3.Vec {
	az := degToRad(azimuthDeg)
	el := degToRad(elevationDeg)
	return r3.Vec{
		X: math.Cos(el) * math.Cos(az),
		Y: -math.Cos(el) * math.Sin(az),
		Z: math.Sin(el),
	}
}

// Heading recovers the device's compass heading in degrees [0, 360) by
// transforming the camera's forward axis back into the world frame.
func Heading(R RotationMatrix) float64 {
	forward := R.ApplyTranspose(r3.Vec{X: 0, Y: 0, Z: -1})
	deg := radToDeg(math.Atan2(-forward.Y, forward.X))
	return math.Mod(deg+360, 360)
}

// Distance returns the Euclidean pixel distance between two screen points.
func Distance(a, b ScreenPoint) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
