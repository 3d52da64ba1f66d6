// internal/leaderboard/client.go
//
// HTTP client for the leaderboard API. Used by game frontends (see
// cmd/play) to show the top-10 ranking and to persist final scores.
//
// Failure semantics: best-effort, fail-open. Transport, status and
// decode errors never escape the client; reads degrade to an empty
// list, writes to false. Single attempt per call, no retries.

package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const requestTimeout = 5 * time.Second

// Entry is one leaderboard row as served by the API. Streak is carried
// for forward compatibility; the backend currently always reports 0.
type Entry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Streak int    `json:"streak"`
}

// Client talks to a leaderboard server at a fixed base URL.
// Satisfies game.Submitter.
type Client struct {
	base string
	http *http.Client
}

// New constructs a Client for the given base URL
// (e.g. "http://localhost:5175").
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: requestTimeout},
	}
}

// GetTopPlayers fetches the top-10 ranking, highest score first.
// Any failure is logged and reported as an empty list; the display is
// cosmetic and must never break gameplay.
func (c *Client) GetTopPlayers(ctx context.Context) []Entry {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/leaderboard", nil)
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard: build request")
		return []Entry{}
	}
	res, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard: fetch top players")
		return []Entry{}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Warn().Int("status", res.StatusCode).Msg("leaderboard: unexpected status")
		return []Entry{}
	}
	var out []Entry
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		log.Warn().Err(err).Msg("leaderboard: decode response")
		return []Entry{}
	}
	if out == nil {
		out = []Entry{}
	}
	return out
}

// UpdateScore submits (or overwrites) the entry for name. Returns true
// only for a backend-acknowledged 2xx response; any failure is logged
// and reported as false.
func (c *Client) UpdateScore(ctx context.Context, name string, score int) bool {
	body, err := json.Marshal(map[string]any{"name": name, "score": score})
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard: encode submission")
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/leaderboard", bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard: build request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("hero", name).Msg("leaderboard: submit score")
		return false
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Warn().Int("status", res.StatusCode).Str("hero", name).Msg("leaderboard: submission rejected")
		return false
	}
	return true
}
