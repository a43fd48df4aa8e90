package banner

import (
	"iter"
	"strings"

	"gitlab.com/tinyland/lab/owofetch/display/color"
)

// RowKind says which columns a merged row carries.
type RowKind uint8

const (
	Both RowKind = iota
	ArtOnly
	InfoOnly
)

func (k RowKind) String() string {
	switch k {
	case Both:
		return "both"
	case ArtOnly:
		return "art-only"
	case InfoOnly:
		return "info-only"
	default:
		return "unknown"
	}
}

// Row pairs the art and info segments printed on one output line.
type Row struct {
	Kind RowKind
	Art  string
	Info string
}

// Zip yields max(len(art), len(info)) rows, top-aligned.
func Zip(art, info []string) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for i := range max(len(art), len(info)) {
			var row Row
			switch {
			case i < len(art) && i < len(info):
				row = Row{Kind: Both, Art: art[i], Info: info[i]}
			case i < len(art):
				row = Row{Kind: ArtOnly, Art: art[i]}
			default:
				row = Row{Kind: InfoOnly, Info: info[i]}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Merge renders the zipped rows. Art segments are tinted with artColor and
// info-only rows are indented by columnWidth spaces so they line up with
// the info column.
func Merge(art, info []string, artColor color.RGB, columnWidth int) iter.Seq[string] {
	indent := strings.Repeat(" ", max(columnWidth, 0))
	return func(yield func(string) bool) {
		for row := range Zip(art, info) {
			var line string
			switch row.Kind {
			case Both:
				line = color.Colorize(row.Art, artColor) + row.Info
			case ArtOnly:
				line = color.Colorize(row.Art, artColor)
			case InfoOnly:
				line = indent + row.Info
			}
			if !yield(line) {
				return
			}
		}
	}
}
