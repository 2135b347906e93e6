// Command scene-simulator composes a single radar scene from synthetic
// inputs and prints it as JSON. It exists to exercise the full pipeline
// (ephemeris, projection, horizon fill, clustering) without a device.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bsyouness/frinder/internal/constants"
	"github.com/bsyouness/frinder/internal/log"
	"github.com/bsyouness/frinder/pkg/catalog"
	"github.com/bsyouness/frinder/pkg/config"
	"github.com/bsyouness/frinder/pkg/geomath"
	"github.com/bsyouness/frinder/pkg/projection"
	"github.com/bsyouness/frinder/pkg/scene"
)

func main() {
	var (
		lat        = flag.Float64("lat", 40.7128, "observer latitude in degrees")
		lon        = flag.Float64("lon", -74.0060, "observer longitude in degrees, east positive")
		heading    = flag.Float64("heading", 0, "device compass heading in degrees")
		pitch      = flag.Float64("pitch", 0, "device pitch in degrees above the horizon")
		width      = flag.Float64("width", 390, "viewport width in pixels")
		height     = flag.Float64("height", 844, "viewport height in pixels")
		timeStr    = flag.String("time", "", "UTC instant (RFC3339); defaults to now")
		configFile = flag.String("config", "", "optional engine config YAML")
		catYAML    = flag.String("catalog", "", "optional landmark catalog YAML")
		catDB      = flag.String("catalog-db", "", "optional landmark catalog SQLite database")
		nFriends   = flag.Int("friends", 5, "number of synthetic friends to scatter around the observer")
		seed       = flag.Int64("seed", 42, "seed for the synthetic friend scatter")
		debug      = flag.Bool("debug", false, "enable debug logging")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(constants.Version)
		return
	}

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	now := time.Now().UTC()
	if *timeStr != "" {
		var err error
		now, err = time.Parse(time.RFC3339, *timeStr)
		if err != nil {
			log.Fatalf("invalid -time: %v", err)
		}
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	landmarks, err := loadLandmarks(*catYAML, *catDB)
	if err != nil {
		log.Fatalf("loading landmark catalog: %v", err)
	}

	observer := geomath.Point{Lat: *lat, Lon: *lon}
	snap := scene.Snapshot{
		Orientation:      projection.RotationFromHeadingPitch(*heading, *pitch),
		Location:         &observer,
		Friends:          syntheticFriends(observer, *nFriends, *seed, now),
		Landmarks:        landmarks,
		LandmarksEnabled: len(landmarks) > 0,
		Screen:           projection.Size{Width: *width, Height: *height},
		Now:              now,
	}

	composer := scene.NewComposer(cfg, log.GetSugaredLogger())
	s := composer.ComposeScene(snap)

	log.Infof("composed scene: %d friends visible, %d clusters, daytime=%v",
		len(s.Friends), len(s.Clusters), s.Daytime)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		log.Fatalf("encoding scene: %v", err)
	}
}

// loadLandmarks picks whichever catalog source was supplied; the SQLite
// database wins when both are given.
func loadLandmarks(yamlPath, dbPath string) ([]catalog.Landmark, error) {
	var provider catalog.Provider
	switch {
	case dbPath != "":
		p, err := catalog.NewSQLiteProvider(dbPath)
		if err != nil {
			return nil, err
		}
		provider = p
	case yamlPath != "":
		provider = catalog.NewYAMLProvider(yamlPath)
	default:
		return nil, nil
	}
	defer provider.Close()
	return provider.Landmarks()
}

// syntheticFriends scatters friends within a few kilometers of the
// observer, all with fresh location timestamps.
func syntheticFriends(origin geomath.Point, n int, seed int64, now time.Time) []scene.Friend {
	rng := rand.New(rand.NewSource(seed))
	friends := make([]scene.Friend, 0, n)
	for i := 0; i < n; i++ {
		friends = append(friends, scene.Friend{
			ID:          uuid.NewString(),
			DisplayName: fmt.Sprintf("friend-%d", i+1),
			Location: geomath.Point{
				Lat: origin.Lat + (rng.Float64()-0.5)*0.05,
				Lon: origin.Lon + (rng.Float64()-0.5)*0.05,
			},
			UpdatedAt: now.Add(-time.Duration(rng.Intn(120)) * time.Second),
		})
	}
	return friends
}
