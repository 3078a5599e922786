package util

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// TerminalWidth returns the width of the controlling terminal in columns.
// When stdout is not a terminal the COLUMNS environment variable is used,
// and when that is unset or unusable the width defaults to 80.
func TerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	if columns := os.Getenv("COLUMNS"); len(columns) > 0 {
		if width, err := strconv.Atoi(columns); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
