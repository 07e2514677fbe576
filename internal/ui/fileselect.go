package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/ui/model"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
)

func newFileSelectModel(dir string) fileSelectModel {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".json"}
	picker.CurrentDirectory = absDir(dir)
	picker.AutoHeight = true

	return fileSelectModel{picker: picker}
}

// absDir resolves the configured directory so the picker can walk up from it.
func absDir(dir string) string {
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	return abs
}

type fileSelectModel struct {
	picker filepicker.Model
	notice string
	width  int
	height int
}

func (m fileSelectModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m fileSelectModel) Update(msg tea.Msg) (fileSelectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case config.Config:
		m.picker.CurrentDirectory = absDir(msg.FileDir)

		return m, nil
	case viewPortSizeMsg:
		m.width = msg.width
		m.height = msg.height
		// AutoHeight reserves its own margin below the list, the container border
		// and the header and notice lines fit inside it.
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: msg.width, Height: msg.height - 1})

		return m, cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.notice = ""

		return m, tea.Batch(cmd, func() tea.Msg { return selectedFileMsg{path: path} })
	}

	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.notice = "Only .json files can be opened: " + filepath.Base(path)
	}

	return m, cmd
}

func (m fileSelectModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ToolbarSource.Render(m.picker.CurrentDirectory),
		m.picker.View(),
		styles.StatusError.Render(m.notice))

	return model.Container("Open file", m.width-2, m.height-2, content, true)
}
