package render

import (
	"os"
	"strconv"
)

const defaultWidth = 80

// columnsFromEnv reads COLUMNS, returning 0 when unset or invalid
func columnsFromEnv() int {
	n, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
