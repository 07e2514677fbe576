package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/source"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

// BuildInfo describes the running binary, shown in the status bar and help page.
type BuildInfo struct {
	Version    string
	Date       string
	Commit     string
	ConfigPath string
}

// Loader runs a single load attempt. Implemented by *source.Loader.
type Loader interface {
	Load(ctx context.Context, req source.Request) (source.Result, error)
}

type UI struct {
	program *tea.Program
}

// New creates the terminal ui. The startup request is loaded as soon as the program starts.
func New(ctx context.Context, userConfig config.Config, loader Loader, startup source.Request, build BuildInfo) *UI {
	zone.NewGlobal()

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, userConfig, loader, startup, build),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(30)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
