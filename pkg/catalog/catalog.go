// Package catalog loads the static landmark catalog the radar renders.
// The engine itself consumes landmarks as plain slices; the providers here
// are the ingestion collaborators that produce those slices from a YAML
// file or a SQLite database.
package catalog

import "github.com/bsyouness/frinder/pkg/geomath"

// Landmark is a static point of interest.
type Landmark struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Icon      string  `yaml:"icon" json:"icon"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Location returns the landmark's coordinate as a geomath point.
func (l Landmark) Location() geomath.Point {
	return geomath.Point{Lat: l.Latitude, Lon: l.Longitude}
}

// Provider supplies the landmark catalog from some backing store.
type Provider interface {
	Landmarks() ([]Landmark, error)
	Close() error
}
