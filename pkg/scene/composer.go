package scene

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bsyouness/frinder/pkg/cluster"
	"github.com/bsyouness/frinder/pkg/config"
	"github.com/bsyouness/frinder/pkg/ephem"
	"github.com/bsyouness/frinder/pkg/geomath"
	"github.com/bsyouness/frinder/pkg/horizon"
	"github.com/bsyouness/frinder/pkg/projection"
)

// Fallback day window used when the observer's location is unknown and a
// real solar elevation cannot be computed.
const (
	fallbackDayStartHour = 6
	fallbackDayEndHour   = 20
)

// Composer turns per-frame snapshots into scenes. It is safe to reuse
// across frames; it holds only configuration and the precomputed star
// table.
type Composer struct {
	cfg    config.Config
	stars  []r3.Vec
	logger *zap.SugaredLogger
}

// NewComposer builds a composer for the given configuration. A nil logger
// disables logging.
func NewComposer(cfg config.Config, logger *zap.SugaredLogger) *Composer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Composer{
		cfg:    cfg,
		stars:  starField(cfg.StarSeed, cfg.StarCount),
		logger: logger,
	}
}

func (c *Composer) camera(screen projection.Size) projection.Camera {
	return projection.Camera{
		HFOVDeg: c.cfg.HorizontalFOVDeg,
		VFOVDeg: c.cfg.VerticalFOVDeg,
		Screen:  screen,
	}
}

// ComposeScene resolves every tracked entity for one frame. It never fails:
// entities that are stale, disabled, or out of view are simply absent from
// the result.
func (c *Composer) ComposeScene(snap Snapshot) Scene {
	cam := c.camera(snap.Screen)
	s := Scene{
		HeadingDeg:  projection.Heading(snap.Orientation),
		Horizon:     horizon.Polyline(snap.Orientation, cam, c.cfg.HorizonStepDeg),
		EarthRegion: horizon.EarthRegion(snap.Orientation, cam, c.cfg.HorizonBisectIterations),
		MoonPhase:   ephem.MoonPhase(snap.Now),
	}

	c.resolveSky(&s, snap, cam)

	placedFriends := c.resolveFriends(snap, cam)
	placedLandmarks := c.resolveLandmarks(snap, cam)

	clusterFriends := make([]cluster.Friend, len(placedFriends))
	for i, pf := range placedFriends {
		clusterFriends[i] = cluster.Friend{ID: pf.Friend.ID, Screen: pf.Screen}
	}
	s.Clusters = cluster.Group(placedLandmarks, clusterFriends, c.cfg.ClusterThresholdPx)

	// Friends absorbed into a cluster badge are not rendered individually.
	absorbed := cluster.Absorbed(s.Clusters)
	s.Friends = make([]PlacedFriend, 0, len(placedFriends))
	for _, pf := range placedFriends {
		if !absorbed[pf.Friend.ID] {
			s.Friends = append(s.Friends, pf)
		}
	}

	s.Target = c.resolveTarget(snap, cam)

	c.logger.Debugw("composed scene",
		"friends", len(s.Friends),
		"clusters", len(s.Clusters),
		"daytime", s.Daytime,
		"heading", s.HeadingDeg)
	return s
}

// resolveSky places the sun and moon and classifies day versus night.
// Without a location fix the celestial positions cannot be computed and the
// day/night call falls back to a fixed clock window; the decorative star
// field needs no location and still renders.
func (c *Composer) resolveSky(s *Scene, snap Snapshot, cam projection.Camera) {
	if snap.Location == nil {
		hour := snap.Now.Hour()
		s.Daytime = hour >= fallbackDayStartHour && hour < fallbackDayEndHour
	} else {
		lat, lon := snap.Location.Lat, snap.Location.Lon
		s.Daytime = ephem.IsDaytime(snap.Now, lat, lon)

		sun := ephem.SunPosition(snap.Now, lat, lon)
		s.SunPosition = &sun
		s.Sun = projection.Project(
			projection.DirectionFromHorizontal(sun.AzimuthDeg, sun.ElevationDeg),
			snap.Orientation, cam)

		moon := ephem.MoonPosition(snap.Now, lat, lon)
		s.MoonPosition = &moon
		s.Moon = projection.Project(
			projection.DirectionFromHorizontal(moon.AzimuthDeg, moon.ElevationDeg),
			snap.Orientation, cam)
	}

	if !s.Daytime {
		for _, dir := range c.stars {
			if p := projection.Project(dir, snap.Orientation, cam); p != nil && cam.Screen.Contains(*p) {
				s.Stars = append(s.Stars, *p)
			}
		}
	}
}

// resolveFriends returns the friends that are fresh, in front of the
// device, and inside the viewport.
func (c *Composer) resolveFriends(snap Snapshot, cam projection.Camera) []PlacedFriend {
	if snap.Location == nil {
		return nil
	}

	var placed []PlacedFriend
	for _, f := range snap.Friends {
		if snap.Now.Sub(f.UpdatedAt) > c.cfg.FriendStaleness {
			continue
		}
		p := projection.Project(projection.DirectionVector(*snap.Location, f.Location), snap.Orientation, cam)
		if p == nil || !cam.Screen.Contains(*p) {
			continue
		}
		placed = append(placed, PlacedFriend{
			Friend:   f,
			Screen:   *p,
			Distance: geomath.Distance(*snap.Location, f.Location),
		})
	}
	return placed
}

// resolveLandmarks returns the enabled landmarks visible this frame,
// already shaped for the clustering engine.
func (c *Composer) resolveLandmarks(snap Snapshot, cam projection.Camera) []cluster.Landmark {
	if snap.Location == nil || !snap.LandmarksEnabled {
		return nil
	}

	var placed []cluster.Landmark
	for _, l := range snap.Landmarks {
		if snap.DisabledLandmarks[l.ID] {
			continue
		}
		p := projection.Project(projection.DirectionVector(*snap.Location, l.Location()), snap.Orientation, cam)
		if p == nil || !cam.Screen.Contains(*p) {
			continue
		}
		placed = append(placed, cluster.Landmark{
			ID:       l.ID,
			Name:     l.Name,
			Icon:     l.Icon,
			Screen:   *p,
			Distance: geomath.Distance(*snap.Location, l.Location()),
		})
	}
	return placed
}

// resolveTarget tracks the navigation target with the unclamped projection
// so a directional arrow can point at it even off-screen. Staleness does
// not apply: the arrow points at the last known position.
func (c *Composer) resolveTarget(snap Snapshot, cam projection.Camera) *Target {
	if snap.TargetFriendID == "" || snap.Location == nil {
		return nil
	}

	var target *Friend
	for i := range snap.Friends {
		if snap.Friends[i].ID == snap.TargetFriendID {
			target = &snap.Friends[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	t := &Target{FriendID: target.ID}
	t.Screen = projection.Project(
		projection.DirectionVector(*snap.Location, target.Location),
		snap.Orientation, cam)
	if t.Screen != nil {
		t.Found = projection.Distance(*t.Screen, cam.Screen.Center()) < c.cfg.TargetFoundRadiusPx
	}
	return t
}
