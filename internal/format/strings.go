// Package format provides the width, padding and number formatting
// primitives shared by the banner renderer.
package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the number of terminal cells s occupies.
// It counts extended grapheme clusters, so a letter followed by a combining
// mark is one cell and wide glyphs (CJK, most emoji) are two. ANSI escape
// sequences occupy no cells.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// PadRight appends spaces to s until it occupies width cells.
// Strings already at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
