package banner

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when neither the TTY nor COLUMNS report a width.
const DefaultTermWidth = 80

// getSize is overridden in tests.
var getSize = func() (int, int, error) {
	return term.GetSize(os.Stdout.Fd())
}

// DetectTermWidth returns the width the banner should wrap to.
// A positive override wins; otherwise stdout is queried, then the COLUMNS
// environment variable, and finally DefaultTermWidth is returned.
func DetectTermWidth(override int) int {
	if override > 0 {
		return override
	}

	if w, _, err := getSize(); err == nil && w > 0 {
		return w
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultTermWidth
}
