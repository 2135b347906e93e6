// Package cluster groups screen-proximate landmarks and friends into
// display clusters so overlapping icons collapse into a single badge.
//
// Clusters are recomputed from scratch every frame. Their IDs are derived
// purely from sorted member IDs, so identical membership produces an
// identical ID regardless of discovery order, and the rendering layer can
// key expanded/collapsed state on it across frames.
package cluster

import (
	"sort"
	"strings"

	"github.com/bsyouness/frinder/pkg/projection"
)

// DefaultThresholdPx is the pixel distance under which two entities are
// considered overlapping.
const DefaultThresholdPx = 60.0

// Landmark is a placed landmark: its identity plus the screen position and
// observer distance already resolved for this frame.
type Landmark struct {
	ID       string
	Name     string
	Icon     string
	Screen   projection.ScreenPoint
	Distance float64 // meters from the observer
}

// Friend is a placed friend eligible for absorption into a cluster.
type Friend struct {
	ID     string
	Screen projection.ScreenPoint
}

// Cluster is a set of co-located entities sharing one anchor point. The
// anchor is the seed landmark's position.
type Cluster struct {
	ID        string
	Anchor    projection.ScreenPoint
	Landmarks []Landmark
	Friends   []Friend
}

// Single reports whether the cluster is a lone landmark with no absorbed
// friends, rendered as a plain icon rather than a badge.
func (c Cluster) Single() bool {
	return len(c.Landmarks) == 1 && len(c.Friends) == 0
}

// Group clusters the frame's visible landmarks, then absorbs any friend
// within threshold pixels of a cluster's anchor. Friends not absorbed by
// any cluster are left to render individually; callers learn which via
// Absorbed. Zero landmarks yields an empty list: friends never cluster
// among themselves.
func Group(landmarks []Landmark, friends []Friend, thresholdPx float64) []Cluster {
	if thresholdPx <= 0 {
		thresholdPx = DefaultThresholdPx
	}

	clusters := make([]Cluster, 0, len(landmarks))
	assigned := make([]bool, len(landmarks))
	friendTaken := make([]bool, len(friends))

	for i := range landmarks {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		c := Cluster{
			Anchor:    landmarks[i].Screen,
			Landmarks: []Landmark{landmarks[i]},
		}

		for j := i + 1; j < len(landmarks); j++ {
			if assigned[j] {
				continue
			}
			if projection.Distance(c.Anchor, landmarks[j].Screen) <= thresholdPx {
				assigned[j] = true
				c.Landmarks = append(c.Landmarks, landmarks[j])
			}
		}

		for k := range friends {
			if friendTaken[k] {
				continue
			}
			if projection.Distance(c.Anchor, friends[k].Screen) <= thresholdPx {
				friendTaken[k] = true
				c.Friends = append(c.Friends, friends[k])
			}
		}

		// Closest landmark first for stable display ordering.
		sort.SliceStable(c.Landmarks, func(a, b int) bool {
			return c.Landmarks[a].Distance < c.Landmarks[b].Distance
		})

		c.ID = clusterID(c)
		clusters = append(clusters, c)
	}
	return clusters
}

// Absorbed returns the set of friend IDs that were pulled into a cluster,
// so the scene can skip rendering them individually.
func Absorbed(clusters []Cluster) map[string]bool {
	taken := make(map[string]bool)
	for _, c := range clusters {
		for _, f := range c.Friends {
			taken[f.ID] = true
		}
	}
	return taken
}

// clusterID derives the order-independent identity: sorted landmark IDs
// joined, suffixed with sorted friend IDs when the cluster is mixed.
func clusterID(c Cluster) string {
	lids := make([]string, len(c.Landmarks))
	for i, l := range c.Landmarks {
		lids[i] = l.ID
	}
	sort.Strings(lids)
	id := strings.Join(lids, ",")

	if len(c.Friends) > 0 {
		fids := make([]string, len(c.Friends))
		for i, f := range c.Friends {
			fids[i] = f.ID
		}
		sort.Strings(fids)
		id += "|" + strings.Join(fids, ",")
	}
	return id
}
