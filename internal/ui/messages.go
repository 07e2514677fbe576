package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
)

type contentView int

const (
	viewMain contentView = iota
	viewPicker
	viewHelp
)

func setContentView(view contentView) tea.Cmd {
	return func() tea.Msg { return view }
}

type viewPortSizeMsg struct {
	height int
	width  int
}

func setViewPortSize(height int, width int) tea.Cmd {
	return func() tea.Msg { return viewPortSizeMsg{height: height, width: width} }
}

type statusMsg struct {
	status source.Status
}

// loadedMsg carries the ranked result of a successful load attempt.
type loadedMsg struct {
	result source.Result
}

// loadFailedMsg carries the error of a failed load attempt.
type loadFailedMsg struct {
	request source.Request
	err     error
}

// playersMsg replaces the rendered players. Only applied for the newest load.
type playersMsg struct {
	players  []leaderboard.PlayerRecord
	loadedAt time.Time
}

type selectedFileMsg struct {
	path string
}

type tickMsg time.Time

func tick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
