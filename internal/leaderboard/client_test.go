package leaderboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTopPlayers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/leaderboard", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Entry{
			{Name: "Lea", Score: 12},
			{Name: "Max", Score: 7},
		})
	}))
	defer ts.Close()

	got := New(ts.URL).GetTopPlayers(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, Entry{Name: "Lea", Score: 12}, got[0])
	assert.Equal(t, Entry{Name: "Max", Score: 7}, got[1])
}

func TestGetTopPlayersFailOpen(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		}))
		defer ts.Close()
		assert.Empty(t, New(ts.URL).GetTopPlayers(context.Background()))
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"`))
		}))
		defer ts.Close()
		assert.Empty(t, New(ts.URL).GetTopPlayers(context.Background()))
	})

	t.Run("unreachable backend", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close() // connection refused from here on
		assert.Empty(t, New(ts.URL).GetTopPlayers(context.Background()))
	})
}

func TestUpdateScore(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/leaderboard", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ok := New(ts.URL).UpdateScore(context.Background(), "Lea", 10)
	require.True(t, ok)
	assert.Equal(t, "Lea", got["name"])
	assert.Equal(t, float64(10), got["score"])
}

func TestUpdateScoreFailOpen(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Invalid data", http.StatusBadRequest)
		}))
		defer ts.Close()
		assert.False(t, New(ts.URL).UpdateScore(context.Background(), "", 5))
	})

	t.Run("unreachable backend", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()
		assert.False(t, New(ts.URL).UpdateScore(context.Background(), "Lea", 5))
	})
}
