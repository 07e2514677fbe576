package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/leighmacdonald/lb-tui/internal/ui/input"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testSourceURL = "http://localhost:8080/sample_players.json"

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var errBoom = errors.New("boom")

// fakeLoader answers load attempts from a fixed table keyed by location.
type fakeLoader struct {
	players  map[string][]leaderboard.PlayerRecord
	failures map[string]error
	requests []source.Request
}

func (f *fakeLoader) Load(_ context.Context, req source.Request) (source.Result, error) {
	f.requests = append(f.requests, req)
	if err, ok := f.failures[req.Location]; ok {
		return source.Result{}, err
	}

	return source.Result{Request: req, Players: f.players[req.Location], LoadedAt: time.Now()}, nil
}

func newTestRoot(t *testing.T, loader *fakeLoader) rootModel {
	t.Helper()

	conf := config.Config{SourceURL: testSourceURL, FileDir: t.TempDir()}
	root := newRootModel(t.Context(), conf, loader,
		source.Request{Origin: source.OriginURL, Location: testSourceURL}, BuildInfo{Version: "v0.0.0-test"})
	root.status.refreshInterval = time.Millisecond

	return drain(t, root, func() tea.Msg { return tea.WindowSizeMsg{Width: 120, Height: 40} })
}

// drain runs cmd and every command it produces, feeding the messages back into the model.
func drain(t *testing.T, root rootModel, cmd tea.Cmd) rootModel {
	t.Helper()

	var model tea.Model = root
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg, tickMsg:
		default:
			var produced tea.Cmd
			model, produced = model.Update(msg)
			queue = append(queue, produced)
		}
	}

	updated, ok := model.(rootModel)
	require.True(t, ok)

	return updated
}

func send(t *testing.T, root rootModel, msg tea.Msg) rootModel {
	t.Helper()

	return drain(t, root, func() tea.Msg { return msg })
}

func keyPress(value string) tea.KeyMsg {
	switch value {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
	}
}

func TestRefreshAppliesRankedPlayers(t *testing.T) {
	loader := &fakeLoader{players: map[string][]leaderboard.PlayerRecord{
		testSourceURL: {{Name: "Z", WinRecord: 3, LossRecord: 3, Rating: 1720.6}, {Name: "X", WinRecord: 10, Rating: 1500}},
	}}
	root := newTestRoot(t, loader)

	root = send(t, root, keyPress("r"))

	require.Len(t, loader.requests, 1)
	require.Equal(t, source.OriginURL, loader.requests[0].Origin)
	require.Equal(t, uint64(1), root.applied)
	require.Len(t, root.table.data.players, 2)
	require.Equal(t, "Z", root.table.data.players[0].Name)
	require.Equal(t, source.Status{Message: "Loaded 2 players (from " + testSourceURL + ")"}, root.status.status)
	require.False(t, root.status.loadedAt.IsZero())
	require.Contains(t, root.View(), "Leaderboard (2)")
}

func TestStartupLoad(t *testing.T) {
	loader := &fakeLoader{players: map[string][]leaderboard.PlayerRecord{
		testSourceURL: {{Name: "first", WinRecord: 1, Rating: 1516}},
	}}
	root := newTestRoot(t, loader)

	root = drain(t, root, root.Init())

	require.Len(t, loader.requests, 1)
	require.Equal(t, source.Request{
		Origin:     source.OriginURL,
		Location:   testSourceURL,
		Generation: 1,
		Locale:     language.English,
	}, loader.requests[0])
	require.Equal(t, uint64(1), root.applied)
	require.Equal(t, source.Status{Message: "Loaded 1 players (from " + testSourceURL + ")"}, root.status.status)
	require.Len(t, root.table.data.players, 1)
}

func TestLoadAppliedInSingleUpdate(t *testing.T) {
	root := newTestRoot(t, &fakeLoader{})

	model, _ := root.Update(keyPress("r"))
	loading, ok := model.(rootModel)
	require.True(t, ok)
	require.Equal(t, source.StatusLoading(), loading.status.status)

	model, _ = loading.Update(loadedMsg{result: source.Result{
		Request:  source.Request{Origin: source.OriginURL, Location: testSourceURL, Generation: 1},
		Players:  []leaderboard.PlayerRecord{{Name: "now", Rating: 1500}},
		LoadedAt: time.Now(),
	}})
	loaded, ok := model.(rootModel)
	require.True(t, ok)
	require.Len(t, loaded.table.data.players, 1)
	require.False(t, loaded.status.loadedAt.IsZero())
	require.Equal(t, "Loaded 1 players (from "+testSourceURL+")", loaded.status.status.Message)

	model, _ = loaded.Update(loadFailedMsg{request: source.Request{Origin: source.OriginURL, Generation: 2}, err: errBoom})
	failed, ok := model.(rootModel)
	require.True(t, ok)
	require.True(t, failed.status.status.Err)
	require.Len(t, failed.table.data.players, 1)
}

func TestStaleResultsAreDropped(t *testing.T) {
	root := newTestRoot(t, &fakeLoader{})
	newer := []leaderboard.PlayerRecord{{Name: "newer", Rating: 1600}}
	older := []leaderboard.PlayerRecord{{Name: "older", Rating: 1700}, {Name: "other", Rating: 1500}}

	root = send(t, root, loadedMsg{result: source.Result{
		Request: source.Request{Origin: source.OriginURL, Location: testSourceURL, Generation: 2},
		Players: newer,
	}})
	require.Equal(t, uint64(2), root.applied)

	_, cmd := root.Update(loadedMsg{result: source.Result{
		Request: source.Request{Origin: source.OriginURL, Location: testSourceURL, Generation: 1},
		Players: older,
	}})
	require.Nil(t, cmd)

	_, cmdFailed := root.Update(loadFailedMsg{request: source.Request{Generation: 1}, err: errBoom})
	require.Nil(t, cmdFailed)

	require.Equal(t, newer, root.table.data.players)
	require.Equal(t, "Loaded 1 players (from "+testSourceURL+")", root.status.status.Message)
}

func TestFailedLoadKeepsPreviousPlayers(t *testing.T) {
	loader := &fakeLoader{players: map[string][]leaderboard.PlayerRecord{
		testSourceURL: {{Name: "kept", WinRecord: 1, Rating: 1500}},
	}}
	root := newTestRoot(t, loader)
	root = send(t, root, keyPress("r"))
	require.Len(t, root.table.data.players, 1)

	loader.failures = map[string]error{testSourceURL: errors.Join(source.ErrFetch, errBoom)}
	root = send(t, root, keyPress("r"))

	require.Equal(t, uint64(2), root.applied)
	require.Len(t, root.table.data.players, 1)
	require.True(t, root.status.status.Err)
	require.Equal(t, "Error loading data: boom", root.status.status.Message)
}

func TestSelectedFileLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	loader := &fakeLoader{players: map[string][]leaderboard.PlayerRecord{
		path: {{Name: "solo", Rating: 1500}},
	}}
	root := newTestRoot(t, loader)

	root = send(t, root, keyPress("o"))
	require.Equal(t, viewPicker, root.currentView)

	root = send(t, root, selectedFileMsg{path: path})

	require.Equal(t, viewMain, root.currentView)
	require.Len(t, loader.requests, 1)
	require.Equal(t, source.OriginFile, loader.requests[0].Origin)
	require.Equal(t, "Loaded 1 players (from players.json)", root.status.status.Message)

	loader.failures = map[string]error{path: source.ErrFileRead}
	root = send(t, root, selectedFileMsg{path: path})
	require.Equal(t, source.Status{Message: "Failed to read file", Err: true}, root.status.status)
}

func TestViewNavigation(t *testing.T) {
	root := newTestRoot(t, &fakeLoader{})

	root = send(t, root, keyPress("?"))
	require.Equal(t, viewHelp, root.currentView)
	require.Contains(t, root.View(), "v0.0.0-test")

	_, cmdQuit := root.Update(keyPress("q"))
	require.Nil(t, cmdQuit)

	root = send(t, root, keyPress("esc"))
	require.Equal(t, viewMain, root.currentView)

	root = send(t, root, keyPress("o"))
	require.Equal(t, viewPicker, root.currentView)
	root = send(t, root, keyPress("esc"))
	require.Equal(t, viewMain, root.currentView)

	_, cmd := root.Update(keyPress("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestConfigUpdateChangesSource(t *testing.T) {
	loader := &fakeLoader{}
	root := newTestRoot(t, loader)

	root = send(t, root, config.Config{SourceURL: "http://example.test/other.json", FileDir: "."})
	root = send(t, root, keyPress("r"))

	require.Len(t, loader.requests, 1)
	require.Equal(t, "http://example.test/other.json", loader.requests[0].Location)
	require.Equal(t, "http://example.test/other.json", root.toolbar.sourceURL)
	require.Equal(t, language.English, loader.requests[0].Locale)

	root = send(t, root, config.Config{SourceURL: testSourceURL, FileDir: ".", Locale: "sv"})
	send(t, root, keyPress("r"))

	require.Len(t, loader.requests, 2)
	require.Equal(t, language.Swedish, loader.requests[1].Locale)
}

func TestLeaderboardData(t *testing.T) {
	data := newLeaderboardData(zone.NewPrefix(), []leaderboard.PlayerRecord{
		{Name: "Alice", WinRecord: 2, LossRecord: 1, Rating: 1612.5},
		{Name: "a rather long player name that does not fit", Rating: 1499.4},
	})
	data.nameWidth = 12

	require.Equal(t, 2, data.Rows())
	require.Equal(t, len(leaderboardHeaders), data.Columns())
	require.Equal(t, "1", data.At(0, int(colRank)))
	require.Equal(t, "Alice", zone.Scan(data.At(0, int(colName))))
	require.Equal(t, "1613", data.At(0, int(colRating)))
	require.Equal(t, "2", data.At(0, int(colWins)))
	require.Equal(t, "1", data.At(0, int(colLosses)))
	require.Equal(t, "66.7%", data.At(0, int(colWinRate)))

	require.Equal(t, "2", data.At(1, int(colRank)))
	require.Equal(t, "1499", data.At(1, int(colRating)))
	require.Equal(t, "0.0%", data.At(1, int(colWinRate)))
	name := zone.Scan(data.At(1, int(colName)))
	require.True(t, strings.HasSuffix(name, "…"), name)
	require.Less(t, len([]rune(name)), 12)

	require.Empty(t, data.At(5, int(colName)))
}

func TestTableCursor(t *testing.T) {
	table := newLeaderboardTableModel()
	table, _ = table.Update(viewPortSizeMsg{width: 100, height: 10})
	table, _ = table.Update(playersMsg{players: []leaderboard.PlayerRecord{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	}})

	table, _ = table.Update(keyPress("down"))
	table, _ = table.Update(keyPress("down"))
	table, _ = table.Update(keyPress("down"))
	selected, ok := table.selected()
	require.True(t, ok)
	require.Equal(t, "c", selected.Name)

	table.moveSelection(input.Top)
	require.Equal(t, 0, table.cursor)

	table, _ = table.Update(playersMsg{})
	_, ok = table.selected()
	require.False(t, ok)
	require.Contains(t, table.View(), "No players loaded")
}
