package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — ratings/highlights
	colorSuccess     = lipgloss.Color("#00E676") // Green — watched/acks
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
	colorBlue        = lipgloss.Color("#5B8DEF") // Blue — loading/active
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Row markers for list membership.
const (
	iconToWatch = "+"
	iconWatched = "✓"
)

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorWhite)
)

// Row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowWatched = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleRowToWatch = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary)
)

// Text styles.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleRank = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleRating = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleLoading = lipgloss.NewStyle().
			Foreground(colorBlue)

	styleHelp = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMuted).
			Padding(0, 1)

	stylePaneTitle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	stylePaneTitleFocused = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)
