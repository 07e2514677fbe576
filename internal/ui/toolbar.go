package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// toolbarAction is emitted when one of the toolbar buttons is clicked.
type toolbarAction int

const (
	actionRefresh toolbarAction = iota
	actionOpen
)

func newToolbarModel(sourceURL string) toolbarModel {
	return toolbarModel{id: zone.NewPrefix(), sourceURL: sourceURL}
}

type toolbarModel struct {
	id        string
	sourceURL string
	width     int
	view      contentView
}

func (m toolbarModel) Init() tea.Cmd {
	return nil
}

func (m toolbarModel) Update(msg tea.Msg) (toolbarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case config.Config:
		m.sourceURL = msg.SourceURL
	case viewPortSizeMsg:
		m.width = msg.width
	case contentView:
		m.view = msg
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		switch {
		case zone.Get(m.id + "refresh").InBounds(msg):
			return m, func() tea.Msg { return actionRefresh }
		case zone.Get(m.id + "open").InBounds(msg):
			return m, func() tea.Msg { return actionOpen }
		}
	}

	return m, nil
}

func (m toolbarModel) View() string {
	openStyle := styles.ToolbarButton
	if m.view == viewPicker {
		openStyle = styles.ToolbarButtonActive
	}

	refresh := zone.Mark(m.id+"refresh", styles.ToolbarButton.Render("⟳ Refresh"))
	open := zone.Mark(m.id+"open", openStyle.Render("Open file"))
	remaining := max(0, m.width-lipgloss.Width(refresh)-lipgloss.Width(open)-2)
	label := styles.ToolbarSource.Render(truncate.StringWithTail(m.sourceURL, uint(remaining), "…")) //nolint:gosec

	return lipgloss.JoinHorizontal(lipgloss.Top, refresh, open, label)
}
