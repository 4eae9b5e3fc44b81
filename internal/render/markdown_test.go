package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		input    string
		expected string
	}{
		{
			name:     "headings with rules",
			width:    80,
			input:    "# Summary\n## Impact\n### Details",
			expected: "Summary\n─────────\n\nImpact\n────────\n\nDetails",
		},
		{
			name:     "bullets and nested bullets",
			width:    80,
			input:    "- shipped search\n  * tuned ranking",
			expected: "• shipped search\n  ◦ tuned ranking",
		},
		{
			name:     "bullet wraps with hanging indent",
			width:    20,
			input:    "- one two three four five six",
			expected: "• one two three\n   four five six",
		},
		{
			name:     "numbered list wraps past the number",
			width:    16,
			input:    "12. alpha beta gamma delta",
			expected: "12. alpha beta\n    gamma delta",
		},
		{
			name:     "horizontal rule spans the width",
			width:    10,
			input:    "above\n---\nbelow",
			expected: "above\n──────────\nbelow",
		},
		{
			name:     "inline emphasis markers are removed",
			width:    80,
			input:    "Led **three** launches and *one* rewrite",
			expected: "Led three launches and one rewrite",
		},
		{
			name:     "leading and trailing blank lines trimmed",
			width:    80,
			input:    "\n\n  \nbody\n\n",
			expected: "body",
		},
		{
			name:     "inner blank lines kept",
			width:    80,
			input:    "first\n\nsecond",
			expected: "first\n\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRenderer(tt.width).Render(tt.input)
			assert.Equal(t, tt.expected, plain(got))
		})
	}
}

func TestRenderer_WidthIsCapped(t *testing.T) {
	r := NewRenderer(200)
	assert.Equal(t, MaxWidth, r.width)

	assert.Equal(t, 80, NewRenderer(0).width)

	long := strings.Repeat("word ", 40)
	for _, line := range strings.Split(plain(r.Render(long)), "\n") {
		assert.LessOrEqual(t, len(line), MaxWidth)
	}
}

func TestTerminalWidth_FallsBackToColumns(t *testing.T) {
	t.Setenv("COLUMNS", "123")

	// go test does not attach stdout to a terminal in package mode
	w := TerminalWidth()

	assert.Positive(t, w)
}
