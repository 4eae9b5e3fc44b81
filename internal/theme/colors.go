package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "14" // Cyan - section titles, bullets
	ColorSecondary Color = "13" // Magenta - pull request section
)

// UI semantic colors
const (
	ColorError     Color = "9"   // Red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - dates, tags, rules
	ColorNormal    Color = "250" // Default text
	ColorSuccess   Color = "10"  // Green
	ColorWarning   Color = "11"  // Yellow
)

// Accent colors
const (
	ColorSpinner Color = "205" // Pink
)

// Diff colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)
