package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/lb-tui/internal/config"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. It is
// only responsible for routing config reloads into the running ui.
type App struct {
	configUpdates <-chan config.Config
	// sourceOverride is the --url flag, which outranks the config file across reloads.
	sourceOverride string
}

func NewApp(configUpdates <-chan config.Config, sourceOverride string) *App {
	return &App{configUpdates: configUpdates, sourceOverride: sourceOverride}
}

// Run blocks until the ui exits.
func (app *App) Run(ctx context.Context, tui UI) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go app.configSender(ctx, tui)

	return tui.Run()
}

// configSender forwards reloaded configs to the ui.
func (app *App) configSender(ctx context.Context, tui UI) {
	for {
		select {
		case conf := <-app.configUpdates:
			if app.sourceOverride != "" {
				conf.SourceURL = app.sourceOverride
			}
			tui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
