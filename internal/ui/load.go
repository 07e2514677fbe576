package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/lb-tui/internal/source"
)

// loadCmd runs one load attempt in the background. Overlapping attempts are not
// cancelled, the root model discards whichever result is stale when it arrives.
func loadCmd(ctx context.Context, loader Loader, req source.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := loader.Load(ctx, req)
		if err != nil {
			return loadFailedMsg{request: req, err: err}
		}

		return loadedMsg{result: result}
	}
}

// isStale reports whether a finished attempt was overtaken by a newer one that has
// already been applied.
func isStale(applied uint64, req source.Request) bool {
	if req.Generation <= applied {
		slog.Debug("Dropping stale load", slog.Uint64("generation", req.Generation),
			slog.Uint64("applied", applied), slog.String("location", req.Location))

		return true
	}

	return false
}
