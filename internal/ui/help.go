package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/ui/input"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
)

func newHelpModel(build BuildInfo, sourceURL string, fileDir string) helpModel {
	return helpModel{
		build:     build,
		logPath:   config.Path(config.DefaultLogName),
		sourceURL: sourceURL,
		fileDir:   fileDir,
	}
}

type helpModel struct {
	helpView  help.Model
	build     BuildInfo
	logPath   string
	sourceURL string
	fileDir   string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (helpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Back, input.Default.Help) {
			return m, setContentView(viewMain)
		}
	case config.Config:
		m.sourceURL = msg.SourceURL
		m.fileDir = msg.FileDir
	}

	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Refresh,
			input.Default.Open,
			input.Default.Help,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.Top,
			input.Default.Bottom,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", m.build.ConfigPath),
		styles.DetailRow("Log Path", m.logPath),
		styles.DetailRow("Source URL", m.sourceURL),
		styles.DetailRow("File Directory", m.fileDir),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
