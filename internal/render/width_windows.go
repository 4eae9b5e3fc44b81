//go:build windows

package render

import (
	"os"

	"golang.org/x/sys/windows"
)

// TerminalWidth returns the width of the console attached to stdout. It falls
// back to COLUMNS and then to 80 when stdout is not a console.
func TerminalWidth() int {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(os.Stdout.Fd()), &info); err == nil {
		if cols := int(info.Window.Right-info.Window.Left) + 1; cols > 0 {
			return cols
		}
	}
	if n := columnsFromEnv(); n > 0 {
		return n
	}
	return defaultWidth
}
