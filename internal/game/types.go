// internal/game/types.go
//
// Core type definitions for the gamification engine.
// Defines:
//   - State: a point-in-time snapshot of a play session.
//   - Submitter: the leaderboard hook invoked once per game-over.

package game

import "context"

// State is a read-only snapshot of a Session.
// Invariants (maintained by the Session, see engine.go):
//   - 0 <= Lives <= MaxLives
//   - Points >= 0
//   - Streak >= 0
type State struct {
	Points   int  `json:"points"`   // cumulative score for the current session
	Lives    int  `json:"lives"`    // remaining attempts before game-over
	Streak   int  `json:"streak"`   // consecutive successes since the last failure
	GameOver bool `json:"gameOver"` // true once lives reach zero; frozen until Reset
}

// Submitter persists a final score for a hero name.
// Implementations must be best-effort: report success via the boolean,
// never panic past the call. leaderboard.Client is the canonical
// implementation; tests use in-memory fakes.
type Submitter interface {
	UpdateScore(ctx context.Context, name string, score int) bool
}
