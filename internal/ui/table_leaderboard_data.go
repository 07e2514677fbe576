package ui

import (
	"strconv"

	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// leaderboardCol defines all columns of the leaderboard table, in render order.
type leaderboardCol int

const (
	colRank leaderboardCol = iota
	colName
	colRating
	colWins
	colLosses
	colWinRate
)

// leaderboardColSize defines the fixed column sizes. The name column takes what remains.
type leaderboardColSize int

const (
	colRankSize    leaderboardColSize = 6
	colNameMinSize leaderboardColSize = 8
	colRatingSize  leaderboardColSize = 8
	colWinsSize    leaderboardColSize = 6
	colLossesSize  leaderboardColSize = 6
	colWinRateSize leaderboardColSize = 8
)

var leaderboardHeaders = []string{"#", "Name", "Rating", "W", "L", "Win %"} //nolint:gochecknoglobals

func newLeaderboardData(zoneID string, players []leaderboard.PlayerRecord) *leaderboardData {
	return &leaderboardData{zoneID: zoneID, players: players, nameWidth: int(colNameMinSize)}
}

// leaderboardData implements the table.Data interface over the ranked players.
// Rows are rendered in the order they were given, the position is the rank.
type leaderboardData struct {
	players   []leaderboard.PlayerRecord
	zoneID    string
	nameWidth int
}

func (m *leaderboardData) rowZone(row int) string {
	return m.zoneID + "row" + strconv.Itoa(row)
}

func (m *leaderboardData) At(row int, col int) string {
	if row < 0 || row > len(m.players)-1 {
		return ""
	}

	player := m.players[row]
	switch leaderboardCol(col) {
	case colRank:
		return strconv.Itoa(row + 1)
	case colName:
		name := truncate.StringWithTail(player.Name, uint(max(1, m.nameWidth-1)), "…") //nolint:gosec

		return zone.Mark(m.rowZone(row), name)
	case colRating:
		return leaderboard.FormatRating(player.Rating)
	case colWins:
		return strconv.Itoa(player.WinRecord)
	case colLosses:
		return strconv.Itoa(player.LossRecord)
	case colWinRate:
		return leaderboard.FormatWinRate(player.WinRate())
	default:
		return ""
	}
}

func (m *leaderboardData) Rows() int {
	return len(m.players)
}

func (m *leaderboardData) Columns() int {
	return len(leaderboardHeaders)
}
