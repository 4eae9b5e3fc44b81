//go:build unix

package render

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalWidth returns the width of stdout in columns. It falls back to
// COLUMNS and then to 80 when stdout is not a terminal.
func TerminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 {
		return int(ws.Col)
	}
	if n := columnsFromEnv(); n > 0 {
		return n
	}
	return defaultWidth
}
