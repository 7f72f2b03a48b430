package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// Color palette
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Strength level colors
	WeakColor   = lipgloss.Color("#FF3838") // Red
	MediumColor = lipgloss.Color("#FFD93D") // Yellow
	StrongColor = lipgloss.Color("#00D26A") // Green

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	// Banner style
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Version badge
	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Section headers
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	// Configuration display
	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	// Statistics
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	// Bracketed metadata
	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Failure reason bullets
	ReasonStyle = lipgloss.NewStyle().
			Foreground(WeakColor)

	// Price/total emphasis in store views
	PriceStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Category heading in store listings
	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3B3B4F")).
			Padding(0, 1)

	// Divider
	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Help/footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// LevelStyle returns the badge style for a strength level.
func LevelStyle(level string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch level {
	case "Strong":
		return base.Foreground(lipgloss.Color("#000000")).Background(StrongColor)
	case "Medium":
		return base.Foreground(lipgloss.Color("#000000")).Background(MediumColor)
	case "Weak":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(WeakColor)
	default:
		return base.Foreground(Muted)
	}
}

// ScoreStyle returns the style for a numeric score, colored by the same
// thresholds that bucket levels.
func ScoreStyle(score int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch {
	case score >= defaults.StrongThreshold:
		return base.Foreground(StrongColor)
	case score >= defaults.MediumThreshold:
		return base.Foreground(MediumColor)
	default:
		return base.Foreground(WeakColor)
	}
}
