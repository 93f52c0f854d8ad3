package tui

import "github.com/charmbracelet/lipgloss"

// Colors follow the dark study-room palette.
const (
	surfaceColor  = "#25262c"
	borderColor   = "#2a2b31"
	badgeColor    = "#444651"
	textColor     = "#E5E7EB"
	dimColor      = "#9CA3AF"
	emphasisColor = "#eb5556"

	// GradientStart and GradientEnd color the progress bar on the final card.
	GradientStart = "#eb7e00"
	GradientEnd   = "#c34c83"

	// ProgressColor is the normal progress bar fill.
	ProgressColor = badgeColor
)

// Style variables for consistent TUI rendering.
var (
	// TitleStyle renders deck titles.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(textColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// EmphasisStyle marks the final card with its back shown.
	EmphasisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(emphasisColor)).
			Bold(true)

	// ErrorStyle renders error notices.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(emphasisColor))

	// BadgeStyle renders the front/back face indicator.
	BadgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(badgeColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// CardStyle is the card surface.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(borderColor)).
			Background(lipgloss.Color(surfaceColor)).
			Foreground(lipgloss.Color(textColor)).
			Align(lipgloss.Center, lipgloss.Center).
			Padding(1, 4)

	// EmphasizedCardStyle is the card surface on the final card's back.
	EmphasizedCardStyle = CardStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color(emphasisColor))

	// JumpStyle renders an inactive jump target.
	JumpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor)).
			Padding(0, 1)

	// ActiveJumpStyle renders the jump target at the current card.
	ActiveJumpStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(badgeColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// NoticeStyle renders the transient notice box.
	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(emphasisColor)).
			Foreground(lipgloss.Color(textColor)).
			Padding(0, 1)
)
