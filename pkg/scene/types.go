// Package scene composes the per-frame radar view: it resolves every
// tracked entity (friends, landmarks, sun, moon, stars) against the current
// device attitude and observer location, and returns an immutable Scene for
// the presentation layer.
//
// The composer owns no state between frames and performs no I/O. All inputs
// arrive in a Snapshot assembled by the caller, so the engine is a pure
// function of each frame's inputs and trivially testable with synthetic
// data.
package scene

import (
	"time"

	"github.com/bsyouness/frinder/pkg/catalog"
	"github.com/bsyouness/frinder/pkg/cluster"
	"github.com/bsyouness/frinder/pkg/ephem"
	"github.com/bsyouness/frinder/pkg/geomath"
	"github.com/bsyouness/frinder/pkg/projection"
)

// Friend is a tracked person with a last known location.
type Friend struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"displayName"`
	AvatarRef   string        `json:"avatarRef,omitempty"`
	Location    geomath.Point `json:"location"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Snapshot carries one frame's inputs, captured by the caller before the
// compose call. The composer only reads it.
type Snapshot struct {
	// Orientation maps world-frame vectors into the device frame, as
	// delivered by the motion subsystem.
	Orientation projection.RotationMatrix

	// Location is the observer's position; nil when the location subsystem
	// has no fix yet.
	Location *geomath.Point

	Friends   []Friend
	Landmarks []catalog.Landmark

	// LandmarksEnabled gates all landmark rendering; DisabledLandmarks
	// suppresses individual catalog entries on top of that.
	LandmarksEnabled  bool
	DisabledLandmarks map[string]bool

	// TargetFriendID selects the friend being navigated toward, if any.
	TargetFriendID string

	Screen projection.Size
	Now    time.Time
}

// PlacedFriend is a friend with its resolved on-screen position.
type PlacedFriend struct {
	Friend   Friend                 `json:"friend"`
	Screen   projection.ScreenPoint `json:"screen"`
	Distance float64                `json:"distanceMeters"`
}

// Target reports the navigation target's tracking state. Screen is the
// unclamped projection and may fall outside the viewport (that is the
// point: it steers the directional arrow); it is nil while the target is
// behind the device. Found becomes true once the target is within the
// found radius of screen center, which suppresses the arrow.
type Target struct {
	FriendID string                  `json:"friendId"`
	Screen   *projection.ScreenPoint `json:"screen,omitempty"`
	Found    bool                    `json:"found"`
}

// Scene is one frame's output. It is recomputed from scratch every frame
// and never mutated in place.
type Scene struct {
	HeadingDeg float64 `json:"headingDeg"`

	Friends  []PlacedFriend    `json:"friends"`
	Clusters []cluster.Cluster `json:"clusters"`

	Horizon     []projection.ScreenPoint `json:"horizon"`
	EarthRegion []projection.ScreenPoint `json:"earthRegion"`

	Daytime bool `json:"daytime"`

	Sun          *projection.ScreenPoint `json:"sun,omitempty"`
	SunPosition  *ephem.Horizontal       `json:"sunPosition,omitempty"`
	Moon         *projection.ScreenPoint `json:"moon,omitempty"`
	MoonPosition *ephem.Horizontal       `json:"moonPosition,omitempty"`
	MoonPhase    ephem.PhaseID           `json:"moonPhase,omitempty"`

	Stars []projection.ScreenPoint `json:"stars,omitempty"`

	Target *Target `json:"target,omitempty"`
}
