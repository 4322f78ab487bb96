package playground

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	danger    = lipgloss.AdaptiveColor{Light: "#E0484A", Dark: "#FF5555"}
	textColor = lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}
	muted     = lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}

	gridStyle = lipgloss.NewStyle().Foreground(subtle)

	itemStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Foreground(textColor)

	itemActiveStyle = itemStyle.
			BorderForeground(highlight)

	handleStyle = lipgloss.NewStyle().
			Foreground(muted)

	handleActiveStyle = lipgloss.NewStyle().
				Foreground(highlight).
				Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	bodyStyle = lipgloss.NewStyle().
			Foreground(textColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(muted)

	primaryButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"})

	secondaryButtonStyle = lipgloss.NewStyle().
				Background(subtle).
				Foreground(textColor)

	removeButtonStyle = lipgloss.NewStyle().
				Foreground(danger).
				Bold(true)

	squareStyle     = lipgloss.NewStyle().Foreground(special)
	squareOffStyle  = lipgloss.NewStyle().Foreground(subtle)
	statusBarStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(muted)

	gestureBadgeStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Padding(0, 1)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 1)
)

// applyTheme mirrors the theme flag into lipgloss so every adaptive color
// picks the matching variant.
func applyTheme(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
