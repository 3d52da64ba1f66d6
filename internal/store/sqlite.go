// internal/store/sqlite.go
//
// SQLite-backed Store implementation over database/sql.
// Expects the leaderboard table from the internal/db migrations:
//
//   CREATE TABLE leaderboard (
//       name       TEXT PRIMARY KEY,
//       score      INTEGER NOT NULL,
//       updated_at TEXT NOT NULL DEFAULT (datetime('now'))
//   );

package store

import (
	"context"
	"database/sql"
)

// sqlite implements Store over an opened *sql.DB.
type sqlite struct {
	db *sql.DB
}

// NewSQLiteStore wraps an opened database handle. The caller owns the
// handle's lifecycle (open/migrate/close).
func NewSQLiteStore(db *sql.DB) Store {
	return &sqlite{db: db}
}

// Upsert replaces any existing score for name (last-write-wins).
func (s *sqlite) Upsert(ctx context.Context, name string, score int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO leaderboard (name, score)
        VALUES (?, ?)
        ON CONFLICT(name) DO UPDATE SET
            score      = excluded.score,
            updated_at = datetime('now')`,
		name, score,
	)
	return err
}

// Top returns up to limit entries, highest score first.
func (s *sqlite) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT name, score
        FROM leaderboard
        ORDER BY score DESC, name ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
