// Package config holds the tunable constants of the radar engine and a
// YAML loader for overriding them. Every value has a working default, so
// embedders that never touch configuration can use Default() directly.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config carries the engine's tunables. The zero value is not usable;
// start from Default().
type Config struct {
	// Angular span of the camera, degrees.
	HorizontalFOVDeg float64 `yaml:"horizontal_fov_deg"`
	VerticalFOVDeg   float64 `yaml:"vertical_fov_deg"`

	// FriendStaleness is how old a friend's last known location may be
	// before the friend stops rendering. Configured in whole seconds.
	FriendStaleness time.Duration `yaml:"-"`

	// ClusterThresholdPx is the screen distance under which icons collapse
	// into one cluster badge.
	ClusterThresholdPx float64 `yaml:"cluster_threshold_px"`

	// TargetFoundRadiusPx is the distance from screen center under which a
	// navigation target counts as found and the arrow is suppressed.
	TargetFoundRadiusPx float64 `yaml:"target_found_radius_px"`

	// HorizonStepDeg is the azimuth sampling step for the horizon line.
	HorizonStepDeg float64 `yaml:"horizon_step_deg"`

	// HorizonBisectIterations bounds the earth-region edge search.
	HorizonBisectIterations int `yaml:"horizon_bisect_iterations"`

	// StarCount and StarSeed control the decorative night-sky star field.
	StarCount int   `yaml:"star_count"`
	StarSeed  int64 `yaml:"star_seed"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		HorizontalFOVDeg:        60,
		VerticalFOVDeg:          90,
		FriendStaleness:         5 * time.Minute,
		ClusterThresholdPx:      60,
		TargetFoundRadiusPx:     75,
		HorizonStepDeg:          2,
		HorizonBisectIterations: 20,
		StarCount:               80,
		StarSeed:                1,
	}
}

// LoadFile reads a YAML file over the defaults: absent keys keep their
// default values.
func LoadFile(filename string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// time.Duration has no YAML representation in yaml.v2; staleness is
	// configured in whole seconds alongside the embedded Config fields.
	shadow := struct {
		Config                 `yaml:",inline"`
		FriendStalenessSeconds *int `yaml:"friend_staleness_seconds"`
	}{Config: cfg}

	if err := yaml.Unmarshal(raw, &shadow); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg = shadow.Config
	if shadow.FriendStalenessSeconds != nil {
		cfg.FriendStaleness = time.Duration(*shadow.FriendStalenessSeconds) * time.Second
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HorizontalFOVDeg <= 0 || c.HorizontalFOVDeg >= 180 {
		return fmt.Errorf("horizontal_fov_deg must be in (0, 180), got %v", c.HorizontalFOVDeg)
	}
	if c.VerticalFOVDeg <= 0 || c.VerticalFOVDeg >= 180 {
		return fmt.Errorf("vertical_fov_deg must be in (0, 180), got %v", c.VerticalFOVDeg)
	}
	if c.ClusterThresholdPx < 0 {
		return fmt.Errorf("cluster_threshold_px must be non-negative, got %v", c.ClusterThresholdPx)
	}
	if c.FriendStaleness < 0 {
		return fmt.Errorf("friend_staleness must be non-negative, got %v", c.FriendStaleness)
	}
	return nil
}
