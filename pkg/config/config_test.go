package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.HorizontalFOVDeg != 60 || cfg.VerticalFOVDeg != 90 {
		t.Errorf("unexpected default FOV: %v x %v", cfg.HorizontalFOVDeg, cfg.VerticalFOVDeg)
	}
	if cfg.FriendStaleness != 5*time.Minute {
		t.Errorf("unexpected default staleness: %v", cfg.FriendStaleness)
	}
	if cfg.ClusterThresholdPx != 60 {
		t.Errorf("unexpected default cluster threshold: %v", cfg.ClusterThresholdPx)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frinder.yaml")

	content := []byte("horizontal_fov_deg: 45\ncluster_threshold_px: 80\nfriend_staleness_seconds: 120\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.HorizontalFOVDeg != 45 {
		t.Errorf("horizontal_fov_deg = %v, expected 45", cfg.HorizontalFOVDeg)
	}
	if cfg.ClusterThresholdPx != 80 {
		t.Errorf("cluster_threshold_px = %v, expected 80", cfg.ClusterThresholdPx)
	}
	if cfg.FriendStaleness != 2*time.Minute {
		t.Errorf("friend_staleness = %v, expected 2m", cfg.FriendStaleness)
	}
	// Unset keys keep defaults.
	if cfg.VerticalFOVDeg != 90 {
		t.Errorf("vertical_fov_deg = %v, expected default 90", cfg.VerticalFOVDeg)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("horizontal_fov_deg: 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected validation error for out-of-range FOV")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
