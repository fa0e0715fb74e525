// Package storage provides SQLite-based persistence for export history and
// saved settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Render is a single export record.
type Render struct {
	ID         int64
	Kind       string // grid, card, tile, animation
	Seed       uint32
	Palette    string
	Complexity int
	Designer   bool
	GridSize   int
	Path       string
	CreatedAt  time.Time
}

// Stats aggregates the export history.
type Stats struct {
	Total       int
	ByKind      map[string]int
	UniqueSeeds int
	LastExport  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			palette TEXT NOT NULL,
			complexity INTEGER NOT NULL,
			designer INTEGER NOT NULL DEFAULT 0,
			grid_size INTEGER NOT NULL,
			path TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_seed ON renders(seed);
		CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);

		CREATE TABLE IF NOT EXISTS settings (
			name TEXT PRIMARY KEY,
			blob TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRender records an export and returns its ID.
func (s *Store) SaveRender(r Render) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO renders (kind, seed, palette, complexity, designer, grid_size, path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Kind, int64(r.Seed), r.Palette, r.Complexity, boolInt(r.Designer), r.GridSize, r.Path,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save render: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRenders returns the newest exports first.
func (s *Store) RecentRenders(limit int) ([]Render, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRenders(
		`SELECT id, kind, seed, palette, complexity, designer, grid_size, path, created_at
		 FROM renders
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// RendersBySeed returns every export made with the given seed, newest first.
func (s *Store) RendersBySeed(seed uint32) ([]Render, error) {
	return s.queryRenders(
		`SELECT id, kind, seed, palette, complexity, designer, grid_size, path, created_at
		 FROM renders
		 WHERE seed = ?
		 ORDER BY created_at DESC, id DESC`,
		int64(seed),
	)
}

func (s *Store) queryRenders(query string, args ...any) ([]Render, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query renders: %w", err)
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		var r Render
		var seed int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Kind, &seed, &r.Palette, &r.Complexity,
			&r.Designer, &r.GridSize, &r.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint32(seed)
		r.CreatedAt = parseTime(createdAt)
		renders = append(renders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return renders, nil
}

// SaveSettings stores blob under name, replacing any previous value.
func (s *Store) SaveSettings(name, blob string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (name, blob, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		name, blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// LoadSettings returns the blob stored under name. The boolean is false
// when nothing has been saved yet.
func (s *Store) LoadSettings(name string) (string, bool, error) {
	var blob string
	err := s.db.QueryRow("SELECT blob FROM settings WHERE name = ?", name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot load settings: %w", err)
	}
	return blob, true, nil
}

// Stats aggregates the export history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{ByKind: make(map[string]int)}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT seed), MAX(created_at) FROM renders`,
	).Scan(&stats.Total, &stats.UniqueSeeds, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastExport = parseTime(last)

	rows, err := s.db.Query(`SELECT kind, COUNT(*) FROM renders GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.ByKind[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
