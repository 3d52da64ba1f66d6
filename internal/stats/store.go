// internal/stats/store.go
//
// Per-hero best-streak persistence. Each mini-game keeps a personal
// record streak for the hero; the server stores the maximum ever
// reported so heroes can see their records across devices.

package stats

import (
	"context"
	"database/sql"
)

// Games the server accepts streak records for.
const (
	GameArithmetic   = "arithmetic"
	GameMoney        = "money"
	GameWordProblems = "wordproblems"
)

// KnownGame reports whether g is one of the mini-game identifiers.
func KnownGame(g string) bool {
	switch g {
	case GameArithmetic, GameMoney, GameWordProblems:
		return true
	}
	return false
}

// Store persists best streaks in the hero_streaks table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// RecordStreak stores streak for (heroID, game) if it beats the
// current best; lower values leave the record untouched.
func (s *Store) RecordStreak(ctx context.Context, heroID, game string, streak int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO hero_streaks (hero_id, game, best)
        VALUES (?, ?, ?)
        ON CONFLICT(hero_id, game) DO UPDATE SET
            best = MAX(best, excluded.best)`,
		heroID, game, streak,
	)
	return err
}

// BestStreaks returns the hero's record streak per mini-game.
// Games never played are absent from the map.
func (s *Store) BestStreaks(ctx context.Context, heroID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT game, best FROM hero_streaks WHERE hero_id=?`, heroID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var game string
		var best int
		if err := rows.Scan(&game, &best); err != nil {
			return nil, err
		}
		out[game] = best
	}
	return out, rows.Err()
}
