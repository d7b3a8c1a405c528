package display

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	headerCardStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#E9D7F7")).
			Foreground(lipgloss.Color("#1f1235")).
			Padding(1, 2).
			Align(lipgloss.Center)

	headerLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3f2a56"))

	headerAmountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1f1235")).
				Bold(true)

	formBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#d4d4d8")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c4b5fd")).
			Bold(true)

	sliderFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a78bfa"))

	sliderTrackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#52525b"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))
)
