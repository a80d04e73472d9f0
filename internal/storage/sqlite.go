// Package storage provides SQLite-based persistence for saved boards and
// session history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/patterns/formats"
)

// ErrNotFound is returned when a named board does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Board is a saved grid.
type Board struct {
	ID         int64
	Name       string
	Mode       string
	Policy     string
	Generation uint64
	Cells      []automaton.Coord
	CreatedAt  time.Time
}

// Session records one finished play session.
type Session struct {
	ID              int64
	Mode            string
	Generations     uint64
	PeakPopulation  int
	FinalPopulation int
	Duration        time.Duration
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS boards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			policy TEXT NOT NULL,
			generation INTEGER NOT NULL DEFAULT 0,
			population INTEGER NOT NULL DEFAULT 0,
			cells TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			final_population INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
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

// SaveBoard stores a board under its name, replacing any board with the
// same name. Returns the row ID.
func (s *Store) SaveBoard(b Board) (int64, error) {
	if b.Name == "" {
		return 0, fmt.Errorf("storage: board name is empty")
	}

	// An empty board is stored as an empty string
	var cells []byte
	if len(b.Cells) > 0 {
		var err error
		cells, err = formats.EncodeYAML(formats.Pattern{ID: b.Name, Name: b.Name, Cells: b.Cells})
		if err != nil {
			return 0, fmt.Errorf("storage: cannot encode board: %w", err)
		}
	}

	_, err := s.db.Exec(
		`INSERT INTO boards (name, mode, policy, generation, population, cells)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   mode = excluded.mode,
		   policy = excluded.policy,
		   generation = excluded.generation,
		   population = excluded.population,
		   cells = excluded.cells,
		   created_at = CURRENT_TIMESTAMP`,
		b.Name, b.Mode, b.Policy, b.Generation, len(b.Cells), string(cells),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save board: %w", err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM boards WHERE name = ?", b.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get board ID: %w", err)
	}
	return id, nil
}

// LoadBoard retrieves a board by name. Returns ErrNotFound if it is missing.
func (s *Store) LoadBoard(name string) (Board, error) {
	var b Board
	var cells string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, mode, policy, generation, cells, created_at
		 FROM boards WHERE name = ?`,
		name,
	).Scan(&b.ID, &b.Name, &b.Mode, &b.Policy, &b.Generation, &cells, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Board{}, fmt.Errorf("%w: board %q", ErrNotFound, name)
	}
	if err != nil {
		return Board{}, fmt.Errorf("storage: cannot query board: %w", err)
	}

	if cells != "" {
		p, err := formats.ParseYAML([]byte(cells))
		if err != nil {
			return Board{}, fmt.Errorf("storage: cannot decode board %q: %w", name, err)
		}
		b.Cells = p.Cells
	}
	b.CreatedAt = parseTime(createdAt)
	return b, nil
}

// BoardInfo summarizes a saved board without its cells.
type BoardInfo struct {
	Name       string
	Mode       string
	Generation uint64
	Population int
	CreatedAt  time.Time
}

// ListBoards returns all saved boards, newest first.
func (s *Store) ListBoards() ([]BoardInfo, error) {
	rows, err := s.db.Query(
		`SELECT name, mode, generation, population, created_at
		 FROM boards
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var infos []BoardInfo
	for rows.Next() {
		var info BoardInfo
		var createdAt any
		if err := rows.Scan(&info.Name, &info.Mode, &info.Generation, &info.Population, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteBoard removes a board by name. Returns ErrNotFound if it is missing.
func (s *Store) DeleteBoard(name string) error {
	res, err := s.db.Exec("DELETE FROM boards WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: board %q", ErrNotFound, name)
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (mode, generations, peak_population, final_population, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.Mode, sess.Generations, sess.PeakPopulation, sess.FinalPopulation, sess.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, optionally for a single
// mode. An empty mode returns sessions of every mode.
func (s *Store) RecentSessions(mode string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, generations, peak_population, final_population, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.Mode,
			&sess.Generations,
			&sess.PeakPopulation,
			&sess.FinalPopulation,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Duration = time.Duration(durationMs) * time.Millisecond
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode             string
	Sessions         int
	TotalGenerations int64
	BestPeak         int
	LongestRun       uint64
	LastPlayed       time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(generations), 0), COALESCE(MAX(peak_population), 0),
		        COALESCE(MAX(generations), 0), MAX(created_at)
		 FROM sessions WHERE mode = ?`,
		mode,
	).Scan(&stats.Sessions, &stats.TotalGenerations, &stats.BestPeak, &stats.LongestRun, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearSessions deletes all sessions for the given mode.
func (s *Store) ClearSessions(mode string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles the time.Time or string forms the driver returns for
// DATETIME columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
