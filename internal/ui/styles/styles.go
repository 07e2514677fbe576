package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blu)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	// Tables.
	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")

	Red = lipgloss.Color("#B8383B")
	Blu = lipgloss.Color("#5885A2")

	ColourStrange = lipgloss.Color("#cf6a32")
	ColourLimited = lipgloss.Color("#ffd700")
	ColourGenuine = lipgloss.Color("#4d7455")
	ColourUnusual = lipgloss.Color("#8650ac")
	ColourVintage = lipgloss.Color("#476291")

	TableHeading     = lipgloss.NewStyle().Foreground(Blu).Bold(true).Align(lipgloss.Left).PaddingRight(1)
	TableRowEven     = lipgloss.NewStyle().Foreground(White).Background(GrayDark).PaddingRight(1)
	TableRowOdd      = lipgloss.NewStyle().Foreground(Whiter).Background(GrayDarkAlt).PaddingRight(1)
	TableRowSelected = lipgloss.NewStyle().Bold(true).Background(Blu).Foreground(Black).PaddingRight(1)
	TableRank        = lipgloss.NewStyle().Foreground(ColourLimited).Bold(true)
	TablePodium      = []lipgloss.Color{ColourLimited, White, ColourStrange}

	ToolbarButton       = lipgloss.NewStyle().Foreground(ColourVintage).Bold(true).PaddingLeft(2).PaddingRight(2)
	ToolbarButtonActive = lipgloss.NewStyle().Foreground(ColourUnusual).Bold(true).PaddingLeft(2).PaddingRight(2)
	ToolbarSource       = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(2)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(ColourGenuine).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusUpdated = lipgloss.NewStyle().Foreground(ColourStrange).PaddingRight(2).PaddingLeft(1)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(1)
	StatusVersion = lipgloss.NewStyle().Foreground(ColourGenuine).Bold(true).Align(lipgloss.Center).PaddingRight(1)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconEmpty  = "🍕"
	IconTrophy = "🏆"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
