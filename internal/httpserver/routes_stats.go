// internal/httpserver/routes_stats.go
//
// Best-streak stats routes (hero session required):
//   - POST /api/stats/streak → report a streak for one mini-game;
//     the server keeps the maximum ever seen.
//   - GET  /api/stats/me     → the hero's record streak per mini-game.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Sn4kyGit/learning-maths/internal/stats"
)

type streakReq struct {
	Game   string `json:"game"`
	Streak int    `json:"streak"`
}

// handleRecordStreak stores max(current best, reported streak).
func (s *Server) handleRecordStreak(w http.ResponseWriter, r *http.Request) {
	var req streakReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if !stats.KnownGame(req.Game) || req.Streak < 0 {
		http.Error(w, `{"error":"invalid_data"}`, http.StatusBadRequest)
		return
	}
	if s.stats == nil {
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	h := heroFromCtx(r)
	if err := s.stats.RecordStreak(r.Context(), h.ID, req.Game, req.Streak); err != nil {
		log.Error().Err(err).Str("hero", h.Name).Msg("record streak")
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleStatsMe returns the hero's best streaks.
func (s *Server) handleStatsMe(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	h := heroFromCtx(r)
	best, err := s.stats.BestStreaks(r.Context(), h.ID)
	if err != nil {
		log.Error().Err(err).Str("hero", h.Name).Msg("load streaks")
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"hero":        h,
		"bestStreaks": best,
	})
}
