package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobimadehin/matchpulse-engine/sim"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := newServer(log.New(io.Discard))
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/v1/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, float64(len(teamData)), health["total_teams"])
	assert.Equal(t, float64(len(teamData)*len(startingPositions)), health["total_players"])
}

func TestSimulateDeterministic(t *testing.T) {
	ts := newTestServer(t)

	const path = "/api/v1/simulate?seed=42&home=CAP&away=GAL"

	first, firstBody := get(t, ts, path)
	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

	second, secondBody := get(t, ts, path)
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))

	assert.JSONEq(t, string(firstBody), string(secondBody))

	var result sim.MatchResult
	require.NoError(t, json.Unmarshal(firstBody, &result))
	assert.GreaterOrEqual(t, result.Duration, 91)
	assert.LessOrEqual(t, result.Duration, 98)
}

func TestSimulateValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"missing seed", "/api/v1/simulate?home=CAP&away=GAL", http.StatusBadRequest},
		{"unknown home team", "/api/v1/simulate?seed=1&home=XXX&away=GAL", http.StatusNotFound},
		{"unknown away team", "/api/v1/simulate?seed=1&home=CAP&away=XXX", http.StatusNotFound},
		{"same team twice", "/api/v1/simulate?seed=1&home=CAP&away=CAP", http.StatusBadRequest},
		{"unknown weather", "/api/v1/simulate?seed=1&home=CAP&away=GAL&weather=hail", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			assert.Equal(t, tt.want, resp.StatusCode)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestSimulateDefaultWeatherIsClear(t *testing.T) {
	ts := newTestServer(t)

	_, implicit := get(t, ts, "/api/v1/simulate?seed=7&home=NEB&away=ECL")
	_, explicit := get(t, ts, "/api/v1/simulate?seed=7&home=NEB&away=ECL&weather=clear")

	assert.JSONEq(t, string(implicit), string(explicit))
}

func TestTeamsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/v1/teams")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var teams []TeamInfo
	require.NoError(t, json.Unmarshal(body, &teams))
	require.Len(t, teams, len(teamData))
	for _, team := range teams {
		assert.Len(t, team.Players, len(startingPositions))
		assert.NotEmpty(t, team.Stadium)
		assert.Greater(t, team.Rating, 0.0)
	}

	resp, _ = get(t, ts, "/api/v1/teams/CAP")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, ts, "/api/v1/teams/XXX")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlayersEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/v1/players")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var players []sim.Player
	require.NoError(t, json.Unmarshal(body, &players))
	assert.Len(t, players, len(teamData)*len(startingPositions))

	resp, body = get(t, ts, "/api/v1/players/cap-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var player sim.Player
	require.NoError(t, json.Unmarshal(body, &player))
	assert.Equal(t, "cap-1", player.ID)
	assert.Equal(t, sim.PosGK, player.Position)

	resp, _ = get(t, ts, "/api/v1/players/nope-99")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHomepage(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "MatchPulse Engine")
}
