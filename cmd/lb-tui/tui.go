package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/leighmacdonald/lb-tui/internal/ui"
	"github.com/spf13/cobra"
)

// run is the main entry point of the interactive ui.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config & log home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader, userConfig, errConfig := readConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.LogLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting lb-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	loader := source.NewLoader(httpClient, leaderboard.NewRanker(userConfig.Tag()))
	configLoader.Watch()

	app := NewApp(configUpdates, sourceURL)
	tui := ui.New(cmd.Context(), userConfig, loader, startupRequest(userConfig, sourceFile), ui.BuildInfo{
		Version:    BuildVersion,
		Date:       BuildDate,
		Commit:     BuildCommit,
		ConfigPath: configLoader.Path(),
	})

	if err := app.Run(cmd.Context(), tui); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
