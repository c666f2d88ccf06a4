// Package storage provides persistence for simulation sessions: a SQLite
// store for browsing past trails and a plain-text appender for the legacy
// position log. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/kvistgaard/kinbox/internal/core"
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session represents one recorded sandbox session.
type Session struct {
	ID        int64
	Label     string
	Points    int
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);

		CREATE TABLE IF NOT EXISTS trail_points (
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			PRIMARY KEY (session_id, idx)
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

// SaveTrail records a session and its trail points in one transaction.
// Point order is preserved via the idx column. Returns the session ID.
func (s *Store) SaveTrail(label string, trail []core.Vec2) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	result, err := tx.Exec(
		"INSERT INTO sessions (label, points) VALUES (?, ?)",
		label, len(trail),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO trail_points (session_id, idx, x, y) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare point insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range trail {
		if _, err := stmt.Exec(id, i, p.X, p.Y); err != nil {
			return 0, fmt.Errorf("storage: cannot save trail point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit trail: %w", err)
	}

	return id, nil
}

// Sessions retrieves up to limit recorded sessions, newest first.
func (s *Store) Sessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, label, points, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Label, &e.Points, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Trail retrieves a session's trail points in recorded order.
func (s *Store) Trail(sessionID int64) ([]core.Vec2, error) {
	rows, err := s.db.Query(
		`SELECT x, y FROM trail_points
		 WHERE session_id = ?
		 ORDER BY idx`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query trail: %w", err)
	}
	defer rows.Close()

	var trail []core.Vec2
	for rows.Next() {
		var p core.Vec2
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan point: %w", err)
		}
		trail = append(trail, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return trail, nil
}

// DeleteSession removes a session and, via cascade, its trail points.
func (s *Store) DeleteSession(sessionID int64) error {
	if _, err := s.db.Exec("DELETE FROM trail_points WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("storage: cannot delete trail points: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", sessionID); err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	return nil
}

// LongestTrail returns the largest point count across all sessions.
// Returns 0 if no sessions exist.
func (s *Store) LongestTrail() (int, error) {
	var points sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(points) FROM sessions").Scan(&points)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest trail: %w", err)
	}

	if !points.Valid {
		return 0, nil
	}

	return int(points.Int64), nil
}
