package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for a SQLite catalog database with a
// landmarks(id, name, icon, latitude, longitude) table.
type SQLiteProvider struct {
	db *sql.DB
}

// NewSQLiteProvider opens the catalog database and verifies the connection.
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}
	return &SQLiteProvider{db: db}, nil
}

// Landmarks loads the full catalog, ordered by ID for determinism.
func (s *SQLiteProvider) Landmarks() ([]Landmark, error) {
	rows, err := s.db.Query(`SELECT id, name, icon, latitude, longitude FROM landmarks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query landmarks: %w", err)
	}
	defer rows.Close()

	var landmarks []Landmark
	for rows.Next() {
		var l Landmark
		if err := rows.Scan(&l.ID, &l.Name, &l.Icon, &l.Latitude, &l.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan landmark row: %w", err)
		}
		landmarks = append(landmarks, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read landmark rows: %w", err)
	}
	return landmarks, nil
}

// Close closes the underlying database handle.
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
