// Package art parses the embedded ASCII art assets and pads them into a
// fixed-width column for the banner.
//
// An asset is a text blob whose first line is a six digit hex accent color
// (no leading '#') and whose remaining lines are the picture.
package art

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/owofetch/display/color"
	"gitlab.com/tinyland/lab/owofetch/internal/format"
)

// Gutter is the number of blank cells between the widest art line and the
// info column.
const Gutter = 3

// Asset is a parsed art blob.
type Asset struct {
	Name   string
	Accent color.RGB
	Lines  []string
}

// Padded is an asset's picture with every line right-padded to ColumnWidth.
type Padded struct {
	Lines       []string
	ColumnWidth int
}

// AssetError reports a malformed embedded asset.
type AssetError struct {
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("art asset %q: %v", e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// Parse splits raw into the accent header and picture lines.
func Parse(name string, raw []byte) (Asset, error) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	header, body, _ := strings.Cut(text, "\n")
	accent, err := color.DecodeHex(header)
	if err != nil {
		return Asset{}, &AssetError{Name: name, Err: err}
	}

	var lines []string
	if body != "" {
		lines = strings.Split(body, "\n")
	}
	return Asset{Name: name, Accent: accent, Lines: lines}, nil
}

// Prepare pads every picture line to the widest line plus Gutter cells.
func Prepare(a Asset) Padded {
	widest := 0
	for _, line := range a.Lines {
		widest = max(widest, format.Width(line))
	}

	p := Padded{
		Lines:       make([]string, len(a.Lines)),
		ColumnWidth: widest + Gutter,
	}
	for i, line := range a.Lines {
		p.Lines[i] = format.PadRight(line, p.ColumnWidth)
	}
	return p
}
