// Package render turns model-generated markdown into styled terminal text.
package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CarsonBain/wins/internal/theme"
)

// MaxWidth caps the wrap width on wide terminals
const MaxWidth = 88

var (
	boldPattern     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bulletPattern   = regexp.MustCompile(`^(\s*)[-*] (.*)`)
	hrPattern       = regexp.MustCompile(`^---+$`)
	italicPattern   = regexp.MustCompile(`\*([^*]+)\*`)
	numberedPattern = regexp.MustCompile(`^(\d+)\. (.*)`)
)

// Renderer renders markdown for a fixed width
type Renderer struct {
	width int
}

// NewRenderer creates a Renderer wrapping at min(width, MaxWidth).
// A non-positive width falls back to 80 columns.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{width: min(width, MaxWidth)}
}

// Markdown renders raw at the current terminal width
func Markdown(raw string) string {
	return NewRenderer(TerminalWidth()).Render(raw)
}

// Render handles headings, bullets, numbered lists, rules and inline
// bold/italic. Everything else is wrapped as a paragraph.
func (r *Renderer) Render(raw string) string {
	var out []string

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			text := strings.TrimSpace(line[2:])
			out = append(out, "",
				theme.H1Style.Render(text),
				theme.Rule(theme.TitleRuleStyle, min(lipgloss.Width(text)+2, r.width)))

		case strings.HasPrefix(line, "## "):
			text := strings.TrimSpace(line[3:])
			out = append(out, "",
				theme.H2Style.Render(text),
				theme.Rule(theme.RuleStyle, min(lipgloss.Width(text)+2, r.width)))

		case strings.HasPrefix(line, "### "):
			out = append(out, "", theme.BoldStyle.Render(strings.TrimSpace(line[4:])))

		case bulletPattern.MatchString(line):
			m := bulletPattern.FindStringSubmatch(line)
			indent := len(m[1])
			bullet := theme.BulletStyle.Render("•")
			if indent > 0 {
				bullet = theme.SubBulletStyle.Render("◦")
			}
			out = append(out, strings.Repeat(" ", indent)+bullet+" "+r.wrap(applyInline(m[2]), indent+3))

		case numberedPattern.MatchString(line):
			m := numberedPattern.FindStringSubmatch(line)
			num := theme.BulletStyle.Render(m[1] + ".")
			out = append(out, num+" "+r.wrap(applyInline(m[2]), len(m[1])+2))

		case hrPattern.MatchString(strings.TrimSpace(line)):
			out = append(out, theme.Rule(theme.RuleStyle, r.width))

		case strings.TrimSpace(line) == "":
			out = append(out, "")

		default:
			out = append(out, r.wrap(applyInline(line), 0))
		}
	}

	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n")
}

// wrap fills words up to width-indent cells; continuation lines are padded by indent
func (r *Renderer) wrap(text string, indent int) string {
	maxWidth := r.width - indent
	var lines []string
	current := ""

	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		switch {
		case current == "":
			current = word
		case lipgloss.Width(current)+1+lipgloss.Width(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n"+strings.Repeat(" ", indent))
}

func applyInline(text string) string {
	text = boldPattern.ReplaceAllStringFunc(text, func(s string) string {
		return theme.BoldStyle.Render(boldPattern.FindStringSubmatch(s)[1])
	})
	return italicPattern.ReplaceAllStringFunc(text, func(s string) string {
		return theme.ItalicStyle.Render(italicPattern.FindStringSubmatch(s)[1])
	})
}
