package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/lb-tui/internal/ui/styles"
)

func renderTitleBar(width int, value string) string {
	return lipgloss.
		NewStyle().
		Width(max(0, width-2)).
		Align(lipgloss.Center).
		Background(styles.Black).
		Foreground(styles.ColourStrange).
		Render(value)
}

func newUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}
