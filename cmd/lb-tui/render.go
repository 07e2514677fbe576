package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"github.com/leighmacdonald/lb-tui/internal/source"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var errFormat = errors.New("unknown output format")

var (
	renderTop    int
	renderFormat string
	renderCmd    = &cobra.Command{
		Use:   "render",
		Short: "Print the ranked leaderboard",
		Long:  "Load the leaderboard once, rank it and print it as a table or JSON",
		Args:  cobra.NoArgs,
		RunE:  render,
	}
)

func init() {
	renderCmd.Flags().IntVar(&renderTop, "top", 0, "Only print the highest ranked N players, 0 for all")
	renderCmd.Flags().StringVar(&renderFormat, "format", formatTable, "Output format, table or json")
}

func render(cmd *cobra.Command, _ []string) error {
	_, userConfig, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	config.LoggerInitWriter(cmd.ErrOrStderr(), userConfig.LogLevel())

	ranker := leaderboard.NewRanker(userConfig.Tag())
	loader := source.NewLoader(&http.Client{Timeout: config.DefaultHTTPTimeout}, ranker)
	req := startupRequest(userConfig, sourceFile)

	result, errLoad := loader.Load(cmd.Context(), req)
	if errLoad != nil {
		return errors.Join(errors.New(source.StatusFailed(req.Origin, errLoad).Message), errApp) //nolint:err113
	}

	players := result.Players
	if renderTop > 0 {
		players = ranker.Top(players, renderTop)
	}

	return writeRanked(cmd.OutOrStdout(), players, renderFormat)
}

// writeRanked prints already ranked players in the requested format.
func writeRanked(out io.Writer, players []leaderboard.PlayerRecord, format string) error {
	switch format {
	case formatJSON:
		body, err := leaderboard.MarshalRanked(players)
		if err != nil {
			return errors.Join(err, errApp)
		}

		if _, err := fmt.Fprintln(out, string(body)); err != nil {
			return errors.Join(err, errApp)
		}
	case formatTable:
		if _, err := fmt.Fprintln(out, rankedTable(players)); err != nil {
			return errors.Join(err, errApp)
		}
	default:
		return errors.Join(fmt.Errorf("%w: %s", errFormat, format), errApp)
	}

	return nil
}

func rankedTable(players []leaderboard.PlayerRecord) string {
	rows := make([][]string, len(players))
	for idx, player := range players {
		rows[idx] = []string{
			strconv.Itoa(idx + 1),
			player.Name,
			leaderboard.FormatRating(player.Rating),
			strconv.Itoa(player.WinRecord),
			strconv.Itoa(player.LossRecord),
			leaderboard.FormatWinRate(player.WinRate()),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 1 {
				return lipgloss.NewStyle().PaddingRight(2)
			}

			return lipgloss.NewStyle().PaddingRight(2).Align(lipgloss.Right)
		}).
		Headers("#", "Name", "Rating", "W", "L", "Win %").
		Rows(rows...).
		String()
}
