package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveListen string
	serveData   string
	serveCmd    = &cobra.Command{
		Use:   "serve",
		Short: "Serve a leaderboard data file over HTTP",
		Long:  "Serve the configured data file, plus ranked views of it, for the ui and browsers to fetch",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address, overrides listen_address")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Data file to serve, overrides data_file")
}

func serve(cmd *cobra.Command, _ []string) error {
	_, userConfig, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	if serveListen != "" {
		userConfig.ListenAddress = serveListen
	}

	if serveData != "" {
		userConfig.DataFile = serveData
	}

	config.LoggerInitWriter(cmd.ErrOrStderr(), userConfig.LogLevel())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(userConfig).Run(ctx); err != nil {
		return errors.Join(err, errApp)
	}

	slog.Info("Shutdown complete")

	return nil
}
