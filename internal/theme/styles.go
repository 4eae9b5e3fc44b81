package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleWidth is the width of the rule printed under section titles
const RuleWidth = 50

// Section styles
var (
	PRSectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleRuleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Entry styles
var (
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	ContentStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Status styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// Markdown styles
var (
	BulletStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	H1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	H2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHighlight)

	ItalicStyle = lipgloss.NewStyle().
			Italic(true)

	SubBulletStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Rule renders a horizontal line of width cells in style
func Rule(style lipgloss.Style, width int) string {
	return style.Render(strings.Repeat("─", width))
}
