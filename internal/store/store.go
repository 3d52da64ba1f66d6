// internal/store/store.go
//
// Persistence interface for the score board: a sorted collection of
// hero names keyed by score. Implementations in this package:
//   - memory:  map-based, for tests and durability-free runs.
//   - sqlite:  database/sql over mattn/go-sqlite3, the production backend.

package store

import "context"

// Entry is one score-board row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store is the backing sorted collection for the leaderboard.
// Upsert is last-write-wins: a resubmission for an existing name
// replaces its score even if the new score is lower. That mirrors the
// sorted-set ZADD semantics the service grew up with and is accepted
// as intentional simplicity.
type Store interface {
	// Upsert inserts or replaces the score for name.
	Upsert(ctx context.Context, name string, score int) error

	// Top returns at most limit entries ordered by score descending
	// (name ascending as tie-break).
	Top(ctx context.Context, limit int) ([]Entry, error)
}
