package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound signals a lookup for a snapshot name that was never saved
var ErrNotFound = errors.New("store: snapshot not found")

// Snapshot is a saved viewing position: the preset in use plus the full
// parameter set, enough to restore the exact view later
type Snapshot struct {
	Name    string
	Preset  string
	Params  map[string]float64
	SavedAt time.Time
}

// Store persists snapshots in a SQLite database
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the schema
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("store: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			preset TEXT NOT NULL,
			params TEXT NOT NULL,
			saved_at INTEGER NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Save upserts a snapshot by name
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snap.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO snapshots (name, preset, params, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			preset = excluded.preset,
			params = excluded.params,
			saved_at = excluded.saved_at
	`, snap.Name, snap.Preset, payload, savedAt.Unix())
	return err
}

// Load retrieves a snapshot by name
func (s *Store) Load(ctx context.Context, name string) (Snapshot, error) {
	db, err := s.getDB()
	if err != nil {
		return Snapshot{}, err
	}

	var (
		preset  string
		payload []byte
		savedAt int64
	)
	err = db.QueryRowContext(ctx,
		`SELECT preset, params, saved_at FROM snapshots WHERE name = ?`, name,
	).Scan(&preset, &payload, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}

	var params map[string]float64
	if err := json.Unmarshal(payload, &params); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return Snapshot{
		Name:    name,
		Preset:  preset,
		Params:  params,
		SavedAt: time.Unix(savedAt, 0),
	}, nil
}

// List returns the names of all saved snapshots, newest first
func (s *Store) List(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT name FROM snapshots ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store: not initialized")
	}
	return s.db, nil
}
