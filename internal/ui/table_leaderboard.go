package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/ui/input"
	"github.com/leighmacdonald/lb-tui/internal/ui/model"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

func newLeaderboardTableModel() *tableLeaderboardModel {
	zoneID := zone.NewPrefix()

	return &tableLeaderboardModel{
		id:       zoneID,
		data:     newLeaderboardData(zoneID, nil),
		table:    newUnstyledTable(leaderboardHeaders...),
		viewport: viewport.New(0, 0),
	}
}

type tableLeaderboardModel struct {
	id       string
	table    *table.Table
	data     *leaderboardData
	viewport viewport.Model
	cursor   int
	height   int
	width    int
}

func (m *tableLeaderboardModel) Init() tea.Cmd {
	return nil
}

func (m *tableLeaderboardModel) Update(msg tea.Msg) (*tableLeaderboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case viewPortSizeMsg:
		m.width = msg.width
		m.height = msg.height
		m.refresh()
	case playersMsg:
		m.data = newLeaderboardData(m.id, msg.players)
		m.cursor = 0
		m.viewport.GotoTop()
		m.refresh()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Up):
			m.moveSelection(input.Up)
		case key.Matches(msg, input.Default.Down):
			m.moveSelection(input.Down)
		case key.Matches(msg, input.Default.Top):
			m.moveSelection(input.Top)
		case key.Matches(msg, input.Default.Bottom):
			m.moveSelection(input.Bottom)
		}
	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.moveSelection(input.Up)
		case tea.MouseButtonWheelDown:
			m.moveSelection(input.Down)
		default:
			if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
				return m, nil
			}

			for row := range m.data.players {
				if zone.Get(m.data.rowZone(row)).InBounds(msg) {
					m.cursor = row
					m.refresh()

					break
				}
			}
		}
	}

	return m, nil
}

func (m *tableLeaderboardModel) moveSelection(direction input.Direction) {
	last := len(m.data.players) - 1
	if last < 0 {
		return
	}

	switch direction {
	case input.Up:
		m.cursor = max(0, m.cursor-1)
	case input.Down:
		m.cursor = min(last, m.cursor+1)
	case input.Top:
		m.cursor = 0
	case input.Bottom:
		m.cursor = last
	}

	m.refresh()
}

// selected returns the player under the cursor.
func (m *tableLeaderboardModel) selected() (leaderboard.PlayerRecord, bool) {
	if m.cursor < 0 || m.cursor > len(m.data.players)-1 {
		return leaderboard.PlayerRecord{}, false
	}

	return m.data.players[m.cursor], true
}

// refresh re-renders the table into the viewport and keeps the cursor row visible.
func (m *tableLeaderboardModel) refresh() {
	fixed := int(colRankSize + colRatingSize + colWinsSize + colLossesSize + colWinRateSize)
	m.data.nameWidth = max(int(colNameMinSize), m.width-fixed-4)
	m.viewport.Width = max(0, m.width-2)
	// Container border plus the detail line.
	m.viewport.Height = max(0, m.height-3)
	m.viewport.SetContent(m.renderTable())

	// Row zero of the table body is the second line, after the header.
	line := m.cursor + 1
	switch {
	case m.cursor == 0:
		m.viewport.GotoTop()
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *tableLeaderboardModel) renderTable() string {
	if len(m.data.players) == 0 {
		return styles.InfoMessage.Width(max(0, m.width-2)).Render(styles.IconEmpty + " No players loaded")
	}

	return m.table.
		Data(m.data).
		StyleFunc(func(row, col int) lipgloss.Style {
			width := m.colWidth(leaderboardCol(col))
			switch {
			case row == table.HeaderRow:
				return styles.TableHeading.Width(width)
			case row == m.cursor:
				return styles.TableRowSelected.Width(width)
			case leaderboardCol(col) == colRank && row < len(styles.TablePodium):
				return styles.TableRank.Foreground(styles.TablePodium[row]).Width(width)
			case row%2 == 0:
				return styles.TableRowEven.Width(width)
			default:
				return styles.TableRowOdd.Width(width)
			}
		}).
		String()
}

func (m *tableLeaderboardModel) colWidth(col leaderboardCol) int {
	switch col {
	case colRank:
		return int(colRankSize)
	case colName:
		return m.data.nameWidth
	case colRating:
		return int(colRatingSize)
	case colWins:
		return int(colWinsSize)
	case colLosses:
		return int(colLossesSize)
	case colWinRate:
		return int(colWinRateSize)
	default:
		return 0
	}
}

func (m *tableLeaderboardModel) detail() string {
	player, ok := m.selected()
	if !ok {
		return ""
	}

	return fmt.Sprintf("%s #%d %s  rating %g  %d games  win rate %s",
		styles.IconTrophy, m.cursor+1, player.Name, player.Rating, player.TotalGames(),
		leaderboard.FormatWinRate(player.WinRate()))
}

func (m *tableLeaderboardModel) View() string {
	title := fmt.Sprintf("Leaderboard (%d)", len(m.data.players))
	content := lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), renderTitleBar(m.width, m.detail()))

	return model.Container(title, m.width-2, m.height-2, content, len(m.data.players) > 0)
}
