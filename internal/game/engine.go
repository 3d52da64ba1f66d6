// internal/game/engine.go
//
// Gamification engine for a single play session.
// Responsibilities:
//   - Track points, lives and streak across mini-game answer checks.
//   - Award a bonus life on every third consecutive success (capped).
//   - Transition to game-over when lives reach zero and freeze state
//     until an explicit Reset.
//   - Submit the final score to the leaderboard exactly once per game,
//     fire-and-forget; the outcome is only logged.
//
// Notes:
//   - The submitted score is the point total as it stood immediately
//     before the losing answer's point penalty was applied.
//   - Mutations normally happen on a single goroutine (one call per
//     answer check); the mutex exists so the detached submit goroutine
//     and State() readers stay safe regardless.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// MaxLives is the life cap; sessions start full.
	MaxLives = 5

	// streakBonus is the streak interval that restores one life.
	streakBonus = 3

	// submitTimeout bounds the fire-and-forget score submission.
	submitTimeout = 5 * time.Second
)

// Session is the single source of truth for a player's in-session
// progress. Construct with NewSession; zero value is not usable.
type Session struct {
	mu        sync.Mutex
	hero      string
	points    int
	lives     int
	streak    int
	gameOver  bool
	submitted bool // one submission attempt per game
	submitter Submitter
}

// NewSession starts a fresh session for the given hero name.
// sub may be nil for purely local play (no leaderboard submission).
func NewSession(hero string, sub Submitter) *Session {
	return &Session{hero: hero, lives: MaxLives, submitter: sub}
}

// Hero returns the hero name the session was created with.
func (s *Session) Hero() string { return s.hero }

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Points: s.points, Lives: s.lives, Streak: s.streak, GameOver: s.gameOver}
}

// AddSuccess records a correct answer. Safe to call anytime; a no-op
// once the session is game-over.
//
// Effects: points +1, streak +1; every third consecutive success
// restores one life, never past MaxLives.
func (s *Session) AddSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver {
		return
	}
	s.points++
	s.streak++
	if s.streak%streakBonus == 0 && s.lives < MaxLives {
		s.lives++
	}
}

// AddFailure records a wrong answer. Safe to call anytime; a no-op once
// the session is game-over.
//
// Effects: points -1 (floored at zero), streak reset, lives -1. When
// this decrement reaches zero lives the session flips to game-over and
// the pre-penalty point total is submitted to the leaderboard in a
// detached goroutine. Submission is skipped for an empty hero name or
// a zero score.
func (s *Session) AddFailure() {
	s.mu.Lock()
	if s.gameOver {
		s.mu.Unlock()
		return
	}
	final := s.points // score before this answer's penalty
	if s.points > 0 {
		s.points--
	}
	s.streak = 0
	if s.lives > 0 {
		s.lives--
	}

	submit := false
	if s.lives == 0 {
		s.gameOver = true
		if !s.submitted {
			s.submitted = true
			submit = s.submitter != nil && s.hero != "" && final > 0
		}
	}
	s.mu.Unlock()

	if submit {
		go s.submitScore(final)
	}
}

// Reset unconditionally returns the session to its initial state so a
// new game (and a new submission) can begin.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = 0
	s.lives = MaxLives
	s.streak = 0
	s.gameOver = false
	s.submitted = false
}

// submitScore runs on its own goroutine; gameplay never waits on it.
func (s *Session) submitScore(score int) {
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	if ok := s.submitter.UpdateScore(ctx, s.hero, score); !ok {
		log.Warn().Str("hero", s.hero).Int("score", score).Msg("score submission failed")
		return
	}
	log.Info().Str("hero", s.hero).Int("score", score).Msg("score submitted")
}
