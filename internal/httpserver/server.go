// internal/httpserver/server.go
//
// HTTP server wiring for the learning-maths backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Leaderboard endpoints: GET/POST /api/leaderboard.
//   - Hero identity: POST /api/hero issues a signed session cookie;
//     GET /api/hero/me echoes the current hero.
//   - Best-streak stats (require hero session): /api/stats/*.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Leaderboard submissions are validated (hero name rules + numeric
//     score) before touching the store; store failures answer 500 with
//     a JSON error body, never a crash.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/Sn4kyGit/learning-maths/internal/hero"
	"github.com/Sn4kyGit/learning-maths/internal/stats"
	"github.com/Sn4kyGit/learning-maths/internal/store"
)

// topPlayers is the fixed length of the public ranking.
const topPlayers = 10

// Server bundles router, score store, and DB-backed hero/stats state.
type Server struct {
	r        *chi.Mux
	scores   store.Store
	stats    *stats.Store
	db       *sql.DB
	validate *validator.Validate
}

// New constructs a Server, installs middleware, and registers routes.
// db may be nil when only the leaderboard endpoints are needed (tests);
// hero/stats endpoints then answer 500.
func New(scores store.Store, db *sql.DB) *Server {
	v := validator.New()
	_ = v.RegisterValidation("heroname", func(fl validator.FieldLevel) bool {
		return hero.IsAllowed(fl.Field().String())
	})

	s := &Server{r: chi.NewRouter(), scores: scores, db: db, validate: v}
	if db != nil {
		s.stats = stats.NewStore(db)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"learning-maths","endpoints":["/health","GET /api/leaderboard","POST /api/leaderboard","POST /api/hero"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboardGet)
		r.Post("/leaderboard", s.handleLeaderboardPost)

		r.Post("/hero", s.handleHeroStart)
		r.With(s.requireHero()).Get("/hero/me", s.handleHeroMe)

		r.With(s.requireHero()).Get("/stats/me", s.handleStatsMe)
		r.With(s.requireHero()).Post("/stats/streak", s.handleRecordStreak)
	})

	// Routes exist but the method does not → 405, per the API contract.
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"method_not_allowed"}`, http.StatusMethodNotAllowed)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --------------------------- LEADERBOARD -----------------------------------

// lbEntry is the wire shape of one ranking row. Streak is not tracked
// in the score board yet and is always 0.
type lbEntry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Streak int    `json:"streak"`
}

// handleLeaderboardGet serves the top-10 ranking, score descending.
func (s *Server) handleLeaderboardGet(w http.ResponseWriter, r *http.Request) {
	entries, err := s.scores.Top(r.Context(), topPlayers)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query")
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	out := make([]lbEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, lbEntry{Name: e.Name, Score: e.Score})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// submitReq is the POST /api/leaderboard payload. Score is a pointer so
// a missing field is distinguishable from zero; a non-numeric score
// already fails JSON decoding.
type submitReq struct {
	Name  string `json:"name" validate:"required,heroname"`
	Score *int   `json:"score" validate:"required"`
}

// handleLeaderboardPost upserts an entry. Last-write-wins: a lower
// later score replaces a higher earlier one.
func (s *Server) handleLeaderboardPost(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, `{"error":"invalid_data"}`, http.StatusBadRequest)
		return
	}
	name, err := hero.Validate(req.Name)
	if err != nil {
		http.Error(w, `{"error":"invalid_name"}`, http.StatusBadRequest)
		return
	}

	if err := s.scores.Upsert(r.Context(), name, *req.Score); err != nil {
		log.Error().Err(err).Str("hero", name).Msg("leaderboard upsert")
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Success"))
}
