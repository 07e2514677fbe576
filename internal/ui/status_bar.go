package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/leighmacdonald/lb-tui/internal/ui/input"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
)

// statusRefreshInterval controls how often the relative "updated" time is redrawn.
const statusRefreshInterval = time.Second * 5

type statusBarModel struct {
	width           int
	status          source.Status
	loadedAt        time.Time
	version         string
	refreshInterval time.Duration
}

func newStatusBarModel(version string) *statusBarModel {
	return &statusBarModel{version: version, refreshInterval: statusRefreshInterval}
}

func (m *statusBarModel) Init() tea.Cmd {
	return tick(m.refreshInterval)
}

func (m *statusBarModel) Update(msg tea.Msg) (*statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = msg.status
	case playersMsg:
		m.loadedAt = msg.loadedAt
	case viewPortSizeMsg:
		m.width = msg.width
	case tickMsg:
		return m, tick(m.refreshInterval)
	}

	return m, nil
}

func (m *statusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	if !m.loadedAt.IsZero() {
		args = append(args, styles.StatusUpdated.Render("updated "+humanize.Time(m.loadedAt)))
	}

	args = append(args, m.renderStatus())

	return lipgloss.NewStyle().
		Width(m.width).
		Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m *statusBarModel) renderStatus() string {
	if m.status.Err {
		return styles.StatusError.Render(m.status.Message)
	}

	return styles.StatusMessage.Render(m.status.Message)
}
