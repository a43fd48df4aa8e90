// Package uwu rewrites banner text in the owofetch voice.
//
// The rewrite only swaps single-cell letters for other single-cell letters,
// so the display width of a line never changes and already wrapped lines
// stay within their limit. ANSI escape sequences pass through untouched.
package uwu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var replacements = map[string]string{
	"r": "w",
	"l": "w",
	"R": "W",
	"L": "W",
}

// Transform returns s with r and l replaced by w, preserving case.
func Transform(s string) string {
	if s == "" {
		return s
	}

	var (
		b     strings.Builder
		state byte
	)
	b.Grow(len(s))
	for len(s) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(s, state, nil)
		if n <= 0 {
			// Zero-length decode; emit the rest verbatim.
			b.WriteString(s)
			break
		}
		if width == 1 {
			if repl, ok := replacements[seq]; ok {
				seq = repl
			}
		}
		b.WriteString(seq)
		state = newState
		s = s[n:]
	}
	return b.String()
}
