package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sn4kyGit/learning-maths/internal/db"
	"github.com/Sn4kyGit/learning-maths/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dbh, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(dbh))
	t.Cleanup(func() { _ = dbh.Close() })

	srv := New(store.NewSQLiteStore(dbh), dbh)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := client.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return res
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLeaderboardEmpty(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/api/leaderboard")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Empty(t, out, "empty board is an empty JSON array, not null")
}

func TestLeaderboardSubmitAndFetch(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, http.DefaultClient, ts.URL+"/api/leaderboard",
		map[string]any{"name": "Max", "score": 5})
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	get, err := http.Get(ts.URL + "/api/leaderboard")
	require.NoError(t, err)
	defer get.Body.Close()

	var out []struct {
		Name   string `json:"name"`
		Score  int    `json:"score"`
		Streak int    `json:"streak"`
	}
	require.NoError(t, json.NewDecoder(get.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "Max", out[0].Name)
	assert.Equal(t, 5, out[0].Score)
	assert.Equal(t, 0, out[0].Streak)
}

func TestLeaderboardOverwriteSemantics(t *testing.T) {
	ts := newTestServer(t)
	for _, score := range []int{10, 3} {
		res := postJSON(t, http.DefaultClient, ts.URL+"/api/leaderboard",
			map[string]any{"name": "Lea", "score": score})
		require.Equal(t, http.StatusOK, res.StatusCode)
		res.Body.Close()
	}

	get, err := http.Get(ts.URL + "/api/leaderboard")
	require.NoError(t, err)
	defer get.Body.Close()
	var out []struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}
	require.NoError(t, json.NewDecoder(get.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Score, "later lower score replaces the earlier one")
}

func TestLeaderboardTruncatesToTen(t *testing.T) {
	ts := newTestServer(t)
	for i := 1; i <= 15; i++ {
		res := postJSON(t, http.DefaultClient, ts.URL+"/api/leaderboard",
			map[string]any{"name": "Hero" + string(rune('A'+i-1)), "score": i})
		require.Equal(t, http.StatusOK, res.StatusCode)
		res.Body.Close()
	}

	get, err := http.Get(ts.URL + "/api/leaderboard")
	require.NoError(t, err)
	defer get.Body.Close()
	var out []struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.NewDecoder(get.Body).Decode(&out))
	require.Len(t, out, 10)
	assert.Equal(t, 15, out[0].Score)
	assert.Equal(t, 6, out[9].Score)
}

func TestLeaderboardRejectsBadPayloads(t *testing.T) {
	ts := newTestServer(t)
	cases := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","score":5}`},
		{"missing name", `{"score":5}`},
		{"missing score", `{"name":"Max"}`},
		{"non-numeric score", `{"name":"Max","score":"abc"}`},
		{"overlong name", `{"name":"AAAAAAAAAAAAAAAA","score":5}`},
		{"denylisted name", `{"name":"Kackeheld","score":5}`},
		{"not json", `hello`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := http.Post(ts.URL+"/api/leaderboard", "application/json",
				bytes.NewReader([]byte(tc.body)))
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		})
	}
}

func TestLeaderboardMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/leaderboard", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

// --------------------------- hero + stats ----------------------------------

func heroClient(t *testing.T, ts *httptest.Server, name string) *http.Client {
	t.Helper()
	client := newCookieClient(t)
	res := postJSON(t, client, ts.URL+"/api/hero", map[string]any{"name": name})
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	return client
}

func newCookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func TestHeroStartAndMe(t *testing.T) {
	ts := newTestServer(t)
	client := heroClient(t, ts, "  Lea  ")

	res, err := client.Get(ts.URL + "/api/hero/me")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var me Hero
	require.NoError(t, json.NewDecoder(res.Body).Decode(&me))
	assert.Equal(t, "Lea", me.Name, "name is stored trimmed")
	assert.NotEmpty(t, me.ID)
}

func TestHeroStartRejectsInvalidNames(t *testing.T) {
	ts := newTestServer(t)
	for _, name := range []string{"", "   ", "Blödmann", "AAAAAAAAAAAAAAAA"} {
		res := postJSON(t, http.DefaultClient, ts.URL+"/api/hero", map[string]any{"name": name})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "name=%q", name)
		res.Body.Close()
	}
}

func TestStatsRequireHeroSession(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/api/stats/me")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestStatsRecordAndFetchBestStreaks(t *testing.T) {
	ts := newTestServer(t)
	client := heroClient(t, ts, "Max")

	for _, streak := range []int{4, 7, 5} {
		res := postJSON(t, client, ts.URL+"/api/stats/streak",
			map[string]any{"game": "arithmetic", "streak": streak})
		require.Equal(t, http.StatusOK, res.StatusCode)
		res.Body.Close()
	}

	res, err := client.Get(ts.URL + "/api/stats/me")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out struct {
		Hero        Hero           `json:"hero"`
		BestStreaks map[string]int `json:"bestStreaks"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, "Max", out.Hero.Name)
	assert.Equal(t, 7, out.BestStreaks["arithmetic"], "only the maximum is kept")
}

func TestStatsRejectsUnknownGame(t *testing.T) {
	ts := newTestServer(t)
	client := heroClient(t, ts, "Max")
	res := postJSON(t, client, ts.URL+"/api/stats/streak",
		map[string]any{"game": "chess", "streak": 3})
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
