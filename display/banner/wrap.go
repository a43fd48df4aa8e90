package banner

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"gitlab.com/tinyland/lab/owofetch/internal/format"
)

// Wrap greedily breaks line into fragments no wider than limit cells.
//
// Breaks happen only at whitespace, and runs of whitespace collapse to a
// single space. A word wider than limit on its own is hard-broken at
// grapheme boundaries. A non-positive limit returns line unchanged.
func Wrap(line string, limit int) []string {
	if limit <= 0 || format.Width(line) <= limit {
		return []string{line}
	}

	var (
		out   []string
		cur   strings.Builder
		width int
	)
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		width = 0
	}

	for _, word := range strings.Fields(line) {
		w := format.Width(word)

		if w > limit {
			if cur.Len() > 0 {
				flush()
			}
			pieces := reopenStyles(strings.Split(ansi.Hardwrap(word, limit, true), "\n"))
			out = append(out, pieces[:len(pieces)-1]...)
			last := pieces[len(pieces)-1]
			cur.WriteString(last)
			width = format.Width(last)
			continue
		}

		if cur.Len() > 0 && width+1+w > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
			width++
		}
		cur.WriteString(word)
		width += w
	}
	if cur.Len() > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// reopenStyles makes every piece of a hard-broken word self-contained: an
// SGR style still open at the end of a piece is reset there and replayed at
// the start of the next one. Escapes occupy no cells, so widths are kept.
func reopenStyles(pieces []string) []string {
	var active string
	for i, piece := range pieces {
		prefix := active
		var state byte
		for rest := piece; len(rest) > 0; {
			seq, _, n, newState := ansi.DecodeSequence(rest, state, nil)
			if n <= 0 {
				break
			}
			if isSGR(seq) {
				if seq == "\x1b[0m" || seq == "\x1b[m" {
					active = ""
				} else {
					active += seq
				}
			}
			state = newState
			rest = rest[n:]
		}
		piece = prefix + piece
		if active != "" {
			piece += "\x1b[0m"
		}
		pieces[i] = piece
	}
	return pieces
}

func isSGR(seq string) bool {
	return strings.HasPrefix(seq, "\x1b[") && strings.HasSuffix(seq, "m")
}
