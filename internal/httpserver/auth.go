// internal/httpserver/auth.go
//
// Hero sessions. There are no accounts or passwords: a hero is a
// validated display name plus a server-issued ID, carried in a signed
// JWT cookie so the stats endpoints can attribute best streaks.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Sn4kyGit/learning-maths/internal/hero"
)

const heroCookieName = "hero_token"

// Hero identifies the caller on stats routes.
type Hero struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ctxHeroKey struct{}

func jwtSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "dev_secret_change_me"))
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// signHeroToken issues an HMAC-signed token for the hero, valid 30 days.
func signHeroToken(h Hero) (string, time.Time, error) {
	exp := time.Now().Add(30 * 24 * time.Hour)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   h.ID,
		"name": h.Name,
		"exp":  exp.Unix(),
	})
	signed, err := tok.SignedString(jwtSecret())
	return signed, exp, err
}

// setHeroCookie stores the token in an HTTP-only cookie.
func setHeroCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     heroCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// bearerOrCookie extracts a token from the Authorization header or the
// hero cookie.
func bearerOrCookie(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(heroCookieName); err == nil {
		return c.Value
	}
	return ""
}

// heroFromToken parses and verifies a hero token.
func heroFromToken(tok string) (*Hero, bool) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !t.Valid {
		return nil, false
	}
	id, _ := claims["id"].(string)
	name, _ := claims["name"].(string)
	if id == "" || name == "" {
		return nil, false
	}
	return &Hero{ID: id, Name: name}, true
}

// requireHero enforces a valid hero session on the wrapped routes.
func (s *Server) requireHero() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h, ok := heroFromToken(bearerOrCookie(r))
			if !ok {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxHeroKey{}, h)))
		})
	}
}

// heroFromCtx returns the hero placed by requireHero, or nil.
func heroFromCtx(r *http.Request) *Hero {
	h, _ := r.Context().Value(ctxHeroKey{}).(*Hero)
	return h
}

// --------------------------- /api/hero -------------------------------------

type heroStartReq struct {
	Name string `json:"name"`
}

// handleHeroStart validates the chosen name, records the hero, and
// issues the session cookie.
func (s *Server) handleHeroStart(w http.ResponseWriter, r *http.Request) {
	var req heroStartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	name, err := hero.Validate(req.Name)
	if err != nil {
		http.Error(w, `{"error":"invalid_name"}`, http.StatusBadRequest)
		return
	}
	if s.db == nil {
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	h := Hero{ID: uuid.NewString(), Name: name}
	if _, err := s.db.ExecContext(r.Context(),
		`INSERT INTO heroes (id, name) VALUES (?, ?)`, h.ID, h.Name); err != nil {
		log.Error().Err(err).Str("hero", h.Name).Msg("insert hero")
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	tok, exp, err := signHeroToken(h)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	setHeroCookie(w, tok, exp)
	_ = json.NewEncoder(w).Encode(h)
}

// handleHeroMe echoes the authenticated hero.
func (s *Server) handleHeroMe(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(heroFromCtx(r))
}
