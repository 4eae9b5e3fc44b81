//go:build !unix && !windows

package render

// TerminalWidth returns COLUMNS, or 80 when it is unset
func TerminalWidth() int {
	if n := columnsFromEnv(); n > 0 {
		return n
	}
	return defaultWidth
}
