package source_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const samplePlayers = `{"players":[
	{"name":"Y","wins":1,"losses":9,"rating":1500},
	{"name":"X","wins":10,"losses":0,"rating":1500},
	{"playerName":"Z","winRecord":3,"lossRecord":3,"rating":1720.6}
]}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/sample_players.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePlayers))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"players": [`))
	})
	mux.HandleFunc("/object.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})
	mux.HandleFunc("/error.json", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newLoader(server *httptest.Server) *source.Loader {
	return source.NewLoader(server.Client(), leaderboard.NewRanker(language.English))
}

func TestLoadURL(t *testing.T) {
	server := newTestServer(t)
	loader := newLoader(server)

	req := source.Request{Origin: source.OriginURL, Location: server.URL + "/sample_players.json", Generation: 3}
	result, err := loader.Load(t.Context(), req)
	require.NoError(t, err)
	require.Equal(t, req, result.Request)
	require.Len(t, result.Players, 3)
	require.Equal(t, "Z", result.Players[0].Name)
	require.Equal(t, "X", result.Players[1].Name)
	require.Equal(t, "Y", result.Players[2].Name)
	require.False(t, result.LoadedAt.IsZero())
	require.Equal(t, source.Status{Message: "Loaded 3 players (from " + req.Location + ")"}, result.Status())
}

func TestLoadURLFailures(t *testing.T) {
	server := newTestServer(t)
	loader := newLoader(server)

	_, errMissing := loader.Load(t.Context(), source.Request{Location: server.URL + "/missing.json"})
	require.ErrorIs(t, errMissing, source.ErrFetch)
	require.Equal(t, http.StatusNotFound, source.StatusCode(errMissing))
	require.Equal(t, source.Status{Message: "Error loading data: Failed to fetch data: Not Found", Err: true},
		source.StatusFailed(source.OriginURL, errMissing))

	_, errServer := loader.Load(t.Context(), source.Request{Location: server.URL + "/error.json"})
	require.ErrorIs(t, errServer, source.ErrFetch)
	require.Equal(t, "Error loading data: Failed to fetch data: Internal Server Error",
		source.StatusFailed(source.OriginURL, errServer).Message)

	_, errBroken := loader.Load(t.Context(), source.Request{Location: server.URL + "/broken.json"})
	require.ErrorIs(t, errBroken, leaderboard.ErrParse)
	require.True(t, strings.HasPrefix(source.StatusFailed(source.OriginURL, errBroken).Message, "Error loading data: "))

	_, errShape := loader.Load(t.Context(), source.Request{Location: server.URL + "/object.json"})
	require.ErrorIs(t, errShape, leaderboard.ErrMalformedInput)
	require.Equal(t, "Error loading data: Unsupported JSON structure. Expected array or {players: [...]}.",
		source.StatusFailed(source.OriginURL, errShape).Message)

	_, errTransport := loader.Load(t.Context(), source.Request{Location: "http://127.0.0.1:0/nothing"})
	require.ErrorIs(t, errTransport, source.ErrFetch)
	require.Zero(t, source.StatusCode(errTransport))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	goodPath := filepath.Join(dir, "players.json")
	require.NoError(t, os.WriteFile(goodPath, []byte(`[{"name":"solo","wins":2}]`), 0o600))
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`[{"name": }]`), 0o600))

	loader := source.NewLoader(http.DefaultClient, leaderboard.NewRanker(language.English))

	result, err := loader.Load(t.Context(), source.Request{Origin: source.OriginFile, Location: goodPath})
	require.NoError(t, err)
	require.Equal(t, []leaderboard.PlayerRecord{{Name: "solo", WinRecord: 2, Rating: 1500}}, result.Players)
	require.Equal(t, "Loaded 1 players (from players.json)", result.Status().Message)

	_, errBad := loader.Load(t.Context(), source.Request{Origin: source.OriginFile, Location: badPath})
	require.ErrorIs(t, errBad, leaderboard.ErrParse)
	status := source.StatusFailed(source.OriginFile, errBad)
	require.True(t, status.Err)
	require.True(t, strings.HasPrefix(status.Message, "Error parsing file: invalid character"), status.Message)

	_, errMissing := loader.Load(t.Context(), source.Request{Origin: source.OriginFile, Location: filepath.Join(dir, "nope.json")})
	require.ErrorIs(t, errMissing, source.ErrFileRead)
	require.Equal(t, source.Status{Message: "Failed to read file", Err: true}, source.StatusFailed(source.OriginFile, errMissing))
}

func TestStatusLoading(t *testing.T) {
	require.Equal(t, source.Status{Message: "Loading data..."}, source.StatusLoading())
}

func TestGenerations(t *testing.T) {
	var (
		gens      source.Generations
		waitGroup sync.WaitGroup
		results   = make(chan uint64, 50)
	)

	for range 50 {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			results <- gens.Next()
		}()
	}
	waitGroup.Wait()
	close(results)

	seen := map[uint64]bool{}
	for gen := range results {
		require.False(t, seen[gen])
		seen[gen] = true
	}

	require.Len(t, seen, 50)
	require.Equal(t, uint64(51), gens.Next())
}

func TestLoadLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"zeta"},{"name":"äpple"}]`), 0o600))

	loader := source.NewLoader(http.DefaultClient, leaderboard.NewRanker(language.English))

	english, err := loader.Load(t.Context(), source.Request{Origin: source.OriginFile, Location: path})
	require.NoError(t, err)
	require.Equal(t, "äpple", english.Players[0].Name)

	swedish, err := loader.Load(t.Context(), source.Request{Origin: source.OriginFile, Location: path, Locale: language.Swedish})
	require.NoError(t, err)
	require.Equal(t, "zeta", swedish.Players[0].Name)
}
