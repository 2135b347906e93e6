package cluster

import (
	"testing"

	"github.com/bsyouness/frinder/pkg/projection"
)

func lm(id string, x, y, dist float64) Landmark {
	return Landmark{ID: id, Screen: projection.ScreenPoint{X: x, Y: y}, Distance: dist}
}

func fr(id string, x, y float64) Friend {
	return Friend{ID: id, Screen: projection.ScreenPoint{X: x, Y: y}}
}

func TestGroupOverlapping(t *testing.T) {
	// Two landmarks 40 px apart with a 60 px threshold: one cluster.
	clusters := Group([]Landmark{lm("a", 100, 100, 500), lm("b", 140, 100, 300)}, nil, 60)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if len(c.Landmarks) != 2 {
		t.Fatalf("expected 2 landmarks in cluster, got %d", len(c.Landmarks))
	}
	if c.Single() {
		t.Error("two-landmark cluster should not be single")
	}
	// Closest-first ordering.
	if c.Landmarks[0].ID != "b" {
		t.Errorf("closest landmark should sort first, got %q", c.Landmarks[0].ID)
	}
	// Anchor is the seed's position.
	if c.Anchor != (projection.ScreenPoint{X: 100, Y: 100}) {
		t.Errorf("anchor = %+v, expected seed position", c.Anchor)
	}
}

func TestGroupSeparated(t *testing.T) {
	// 100 px apart, no chain of intermediate overlaps: two clusters.
	clusters := Group([]Landmark{lm("a", 100, 100, 500), lm("b", 200, 100, 300)}, nil, 60)

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	for _, c := range clusters {
		if !c.Single() {
			t.Errorf("cluster %q should be single", c.ID)
		}
	}
}

func TestClusterIDOrderInvariant(t *testing.T) {
	a := lm("alpha", 100, 100, 500)
	b := lm("beta", 120, 100, 300)
	f := fr("friend-1", 110, 110)

	forward := Group([]Landmark{a, b}, []Friend{f}, 60)
	reversed := Group([]Landmark{b, a}, []Friend{f}, 60)

	if len(forward) != 1 || len(reversed) != 1 {
		t.Fatalf("expected 1 cluster each, got %d and %d", len(forward), len(reversed))
	}
	if forward[0].ID != reversed[0].ID {
		t.Errorf("cluster ID depends on input order: %q vs %q", forward[0].ID, reversed[0].ID)
	}
	if forward[0].ID != "alpha,beta|friend-1" {
		t.Errorf("unexpected ID format: %q", forward[0].ID)
	}
}

func TestMixedCluster(t *testing.T) {
	clusters := Group(
		[]Landmark{lm("tower", 200, 300, 1200)},
		[]Friend{fr("f1", 230, 300), fr("f2", 500, 500)},
		60,
	)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if len(c.Friends) != 1 || c.Friends[0].ID != "f1" {
		t.Fatalf("expected only the nearby friend absorbed, got %+v", c.Friends)
	}
	if c.Single() {
		t.Error("a mixed cluster is not single")
	}

	absorbed := Absorbed(clusters)
	if !absorbed["f1"] || absorbed["f2"] {
		t.Errorf("absorbed set wrong: %+v", absorbed)
	}
}

func TestFriendAbsorbedOnlyOnce(t *testing.T) {
	// A friend within threshold of two separate cluster anchors joins the
	// first cluster seeded, and only that one.
	clusters := Group(
		[]Landmark{lm("a", 100, 100, 10), lm("b", 200, 100, 20)},
		[]Friend{fr("f", 150, 100)},
		60,
	)

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	total := len(clusters[0].Friends) + len(clusters[1].Friends)
	if total != 1 {
		t.Fatalf("friend should appear exactly once across clusters, got %d", total)
	}
	if len(clusters[0].Friends) != 1 {
		t.Error("friend should join the first-seeded cluster")
	}
}

func TestEmptyInputs(t *testing.T) {
	if got := Group(nil, []Friend{fr("f", 10, 10)}, 60); len(got) != 0 {
		t.Errorf("no landmarks should mean no clusters, got %d", len(got))
	}
	if got := Group(nil, nil, 60); len(got) != 0 {
		t.Errorf("empty inputs should yield no clusters, got %d", len(got))
	}
}

func TestThresholdEdge(t *testing.T) {
	// Exactly at the threshold counts as overlapping.
	clusters := Group([]Landmark{lm("a", 0, 0, 1), lm("b", 60, 0, 2)}, nil, 60)
	if len(clusters) != 1 {
		t.Fatalf("exact-threshold pair should cluster, got %d clusters", len(clusters))
	}
}
