package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	sourceURL      string
	sourceFile     string
	rootCmd        = &cobra.Command{
		Use:   "lb-tui",
		Short: "Leaderboard terminal UI",
		Long:  `lb-tui - Load, rank and browse player leaderboards from a URL or a local JSON file`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about lb-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default "+config.Path(config.DefaultConfigName+".yaml")+")")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "url", "", "Leaderboard URL, overrides source_url")
	rootCmd.PersistentFlags().StringVar(&sourceFile, "file", "", "Load a local JSON file instead of the URL")
	rootCmd.AddCommand(versionCmd, renderCmd, serveCmd, initCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "lb-tui - Leaderboard Terminal UI\n\n")
	_, _ = fmt.Fprintf(out, "  Version: %s\n", BuildVersion)
	_, _ = fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)
	_, _ = fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
	_, _ = fmt.Fprintf(out, "  Runtime: %s\n\n", BuildGoVersion)
}

// readConfig loads the user config and applies the source flags on top of it.
func readConfig(changes chan<- config.Config) (*config.Loader, config.Config, error) {
	loader := config.NewLoader(cfgFile, changes)

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, errors.Join(errConfig, errApp)
	}

	return loader, applyFlags(userConfig), nil
}

func applyFlags(userConfig config.Config) config.Config {
	if sourceURL != "" {
		userConfig.SourceURL = sourceURL
	}

	return userConfig
}

// startupRequest picks the first source to load: a file passed with --file, otherwise the URL.
func startupRequest(userConfig config.Config, file string) source.Request {
	if file != "" {
		return source.Request{Origin: source.OriginFile, Location: file}
	}

	return source.Request{Origin: source.OriginURL, Location: userConfig.SourceURL}
}
