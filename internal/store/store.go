// Package store keeps a small sqlite history of conversions performed
// by the HTTP server.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Conversion is one recorded conversion
type Conversion struct {
	ID        int64
	CreatedAt time.Time
	NodeCount int
	EdgeCount int
	BytesOut  int
}

// Store wraps the sqlite database holding conversion history
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at the
// given path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP NOT NULL,
		node_count INTEGER NOT NULL,
		edge_count INTEGER NOT NULL,
		bytes_out INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create conversions table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one conversion and returns its row id
func (s *Store) Record(c Conversion) (int64, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO conversions (created_at, node_count, edge_count, bytes_out) VALUES (?, ?, ?, ?)`,
		c.CreatedAt, c.NodeCount, c.EdgeCount, c.BytesOut,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record conversion: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recent conversions, newest first
func (s *Store) Recent(limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, node_count, edge_count, bytes_out
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close()

	var ret []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.NodeCount, &c.EdgeCount, &c.BytesOut); err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		ret = append(ret, c)
	}
	return ret, rows.Err()
}
