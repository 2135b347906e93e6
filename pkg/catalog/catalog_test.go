package catalog

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func TestYAMLProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landmarks.yaml")

	content := []byte(`landmarks:
  - id: eiffel
    name: Eiffel Tower
    icon: tower
    latitude: 48.8584
    longitude: 2.2945
  - id: liberty
    name: Statue of Liberty
    icon: statue
    latitude: 40.6892
    longitude: -74.0445
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewYAMLProvider(path)
	defer p.Close()

	landmarks, err := p.Landmarks()
	if err != nil {
		t.Fatalf("Landmarks: %v", err)
	}
	if len(landmarks) != 2 {
		t.Fatalf("expected 2 landmarks, got %d", len(landmarks))
	}
	if landmarks[0].ID != "eiffel" || landmarks[0].Name != "Eiffel Tower" {
		t.Errorf("unexpected first landmark: %+v", landmarks[0])
	}
	loc := landmarks[1].Location()
	if loc.Lat != 40.6892 || loc.Lon != -74.0445 {
		t.Errorf("unexpected location: %+v", loc)
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	p := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := p.Landmarks(); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestSQLiteProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE landmarks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	)`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`INSERT INTO landmarks VALUES
		('bridge', 'Golden Gate Bridge', 'bridge', 37.8199, -122.4783),
		('opera', 'Sydney Opera House', 'opera', -33.8568, 151.2153)`)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	p, err := NewSQLiteProvider(path)
	if err != nil {
		t.Fatalf("NewSQLiteProvider: %v", err)
	}
	defer p.Close()

	landmarks, err := p.Landmarks()
	if err != nil {
		t.Fatalf("Landmarks: %v", err)
	}
	if len(landmarks) != 2 {
		t.Fatalf("expected 2 landmarks, got %d", len(landmarks))
	}
	// Ordered by ID.
	if landmarks[0].ID != "bridge" || landmarks[1].ID != "opera" {
		t.Errorf("unexpected order: %q, %q", landmarks[0].ID, landmarks[1].ID)
	}
	if landmarks[1].Latitude != -33.8568 {
		t.Errorf("unexpected latitude: %v", landmarks[1].Latitude)
	}
}
