package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/leighmacdonald/lb-tui/internal/ui/input"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/text/language"
)

// rootModel is the top level model for the ui side of the app. It owns the load
// lifecycle, the child models only ever see the result of the newest applied load.
type rootModel struct {
	ctx          context.Context //nolint:containedctx
	loader       Loader
	generations  *source.Generations
	applied      uint64
	startup      source.Request
	sourceURL    string
	locale       language.Tag
	currentView  contentView
	height       int
	width        int
	headerHeight int
	footerHeight int
	table        *tableLeaderboardModel
	status       *statusBarModel
	toolbar      toolbarModel
	picker       fileSelectModel
	help         helpModel
}

func newRootModel(ctx context.Context, userConfig config.Config, loader Loader, startup source.Request, build BuildInfo) rootModel {
	return rootModel{
		ctx:          ctx,
		loader:       loader,
		generations:  &source.Generations{},
		startup:      startup,
		sourceURL:    userConfig.SourceURL,
		locale:       userConfig.Tag(),
		currentView:  viewMain,
		headerHeight: 1,
		footerHeight: 1,
		table:        newLeaderboardTableModel(),
		status:       newStatusBarModel(build.Version),
		toolbar:      newToolbarModel(userConfig.SourceURL),
		picker:       newFileSelectModel(userConfig.FileDir),
		help:         newHelpModel(build, userConfig.SourceURL, userConfig.FileDir),
	}
}

func (m rootModel) Init() tea.Cmd {
	// Init cannot return the model, the loading status lands through the shared status pointer.
	_, startCmd := m.startLoad(m.startup.Origin, m.startup.Location)

	return tea.Batch(
		tea.SetWindowTitle("lb-tui"),
		m.status.Init(),
		startCmd,
	)
}

// startLoad begins a new load attempt, superseding any attempt still in flight. The
// loading status is shown immediately rather than on a later message.
func (m rootModel) startLoad(origin source.Origin, location string) (rootModel, tea.Cmd) {
	req := source.Request{
		Origin:     origin,
		Location:   location,
		Generation: m.generations.Next(),
		Locale:     m.locale,
	}
	slog.Debug("Starting load", slog.String("origin", origin.String()),
		slog.String("location", location), slog.Uint64("generation", req.Generation))

	m, statusCmd := m.apply(statusMsg{status: source.StatusLoading()})

	return m, tea.Batch(statusCmd, loadCmd(m.ctx, m.loader, req))
}

func (m rootModel) refresh() (rootModel, tea.Cmd) {
	return m.startLoad(source.OriginURL, m.sourceURL)
}

func (m rootModel) switchView(view contentView) tea.Cmd {
	if view == viewPicker {
		return tea.Batch(setContentView(view), m.picker.Init())
	}

	return setContentView(view)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width

		return m, setViewPortSize(m.height-m.headerHeight-m.footerHeight, m.width)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case toolbarAction:
		switch msg {
		case actionRefresh:
			return m.refresh()
		case actionOpen:
			if m.currentView == viewPicker {
				return m, m.switchView(viewMain)
			}

			return m, m.switchView(viewPicker)
		}
	case selectedFileMsg:
		var startCmd tea.Cmd
		m, startCmd = m.startLoad(source.OriginFile, msg.path)

		return m, tea.Batch(m.switchView(viewMain), startCmd)
	case loadedMsg:
		if isStale(m.applied, msg.result.Request) {
			return m, nil
		}
		m.applied = msg.result.Request.Generation

		// Players and status change in the same update so no frame shows one without the other.
		var playersCmd, statusCmd tea.Cmd
		m, playersCmd = m.apply(playersMsg{players: msg.result.Players, loadedAt: msg.result.LoadedAt})
		m, statusCmd = m.apply(statusMsg{status: msg.result.Status()})

		return m, tea.Batch(playersCmd, statusCmd)
	case loadFailedMsg:
		if isStale(m.applied, msg.request) {
			return m, nil
		}
		m.applied = msg.request.Generation

		// The previous table stays on screen, only the status changes.
		return m.apply(statusMsg{status: source.StatusFailed(msg.request.Origin, msg.err)})
	case config.Config:
		m.sourceURL = msg.SourceURL
		m.locale = msg.Tag()
	case contentView:
		m.currentView = msg
	}

	return m.propagate(inMsg)
}

func (m rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd

	switch m.currentView {
	case viewPicker:
		if key.Matches(msg, input.Default.Back, input.Default.Open) {
			return m, m.switchView(viewMain)
		}
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	case viewHelp:
		m.help, cmd = m.help.Update(msg)

		return m, cmd
	case viewMain:
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		return m, tea.Quit
	case key.Matches(msg, input.Default.Refresh):
		return m.refresh()
	case key.Matches(msg, input.Default.Open):
		return m, m.switchView(viewPicker)
	case key.Matches(msg, input.Default.Help):
		return m, m.switchView(viewHelp)
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// handleMouse routes clicks to the toolbar and the visible content only, zones of
// views that are not on screen keep their last known position.
func (m rootModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var toolbarCmd, contentCmd tea.Cmd

	m.toolbar, toolbarCmd = m.toolbar.Update(msg)

	switch m.currentView {
	case viewMain:
		m.table, contentCmd = m.table.Update(msg)
	case viewPicker:
		m.picker, contentCmd = m.picker.Update(msg)
	case viewHelp:
	}

	return m, tea.Batch(toolbarCmd, contentCmd)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := styles.HeaderContainerStyle.Width(m.width).Render(m.toolbar.View())
	footer := styles.FooterContainerStyle.Width(m.width).Render(m.status.View())
	contentViewPortHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	var content string
	switch m.currentView {
	case viewPicker:
		content = m.picker.View()
	case viewHelp:
		content = m.help.View()
	case viewMain:
		content = m.table.View()
	}

	ctr := styles.ContentContainerStyle.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, ctr, footer))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

// propagate fans messages other than input events out to every child model.
func (m rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.apply(msg)
}

func (m rootModel) apply(msg tea.Msg) (rootModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 5)

	m.table, cmds[0] = m.table.Update(msg)
	m.status, cmds[1] = m.status.Update(msg)
	m.toolbar, cmds[2] = m.toolbar.Update(msg)
	m.help, cmds[3] = m.help.Update(msg)
	m.picker, cmds[4] = m.picker.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/lb-tui/lb-tui.log
func logMsg(inMsg tea.Msg) {
	switch inMsg.(type) {
	case tickMsg, playersMsg, tea.MouseMsg:
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
