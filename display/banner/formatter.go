// Package banner renders host facts as an info column and lays it out
// beside the padded ASCII art.
//
// Formatter turns a hostfacts.Snapshot into one InfoLine per field, Lines
// wraps them to the space left of the art column, and Merge zips the two
// columns into terminal rows.
package banner

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tinyland/lab/owofetch/collectors/hostfacts"
	"gitlab.com/tinyland/lab/owofetch/display/color"
	"gitlab.com/tinyland/lab/owofetch/display/uwu"
	"gitlab.com/tinyland/lab/owofetch/internal/format"
)

const (
	mebibyte = 1 << 20
	gibibyte = 1 << 30

	// Placeholder replaces any field whose facts are missing.
	Placeholder = "?"
)

// DefaultAccent is the label color used when none is configured.
var DefaultAccent = color.RGB{R: 0xFF, G: 0xA5, B: 0x00}

// RenderConfig controls how the info column is built.
type RenderConfig struct {
	// Accent colors the labels and the user@host names.
	Accent color.RGB
	// Fields are rendered in order, one InfoLine each.
	Fields []Field
	// Numeric selects precise or humanized quantities.
	Numeric format.Mode
	// Uwu rewrites the info column after wrapping.
	Uwu bool
	// TermWidth is the terminal width in cells.
	TermWidth int
}

// DefaultRenderConfig returns every field with precise numbers, uwu on and
// an 80 column terminal.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Accent:    DefaultAccent,
		Fields:    DefaultFields(),
		Numeric:   format.Precise,
		Uwu:       true,
		TermWidth: 80,
	}
}

// InfoLine is one rendered field. OK is false when the field could not be
// rendered; such lines print as Placeholder.
type InfoLine struct {
	Text string
	OK   bool
}

// errMissing marks a fact the snapshot does not carry.
var errMissing = errors.New("fact not available")

// Formatter renders host facts into info lines.
type Formatter struct {
	cfg    RenderConfig
	logger zerolog.Logger
}

// NewFormatter creates a Formatter for cfg.
func NewFormatter(cfg RenderConfig, logger zerolog.Logger) *Formatter {
	return &Formatter{
		cfg:    cfg,
		logger: logger.With().Str("component", "formatter").Logger(),
	}
}

// Render produces one InfoLine per configured field, in order.
func (f *Formatter) Render(snap hostfacts.Snapshot) []InfoLine {
	out := make([]InfoLine, 0, len(f.cfg.Fields))
	for _, field := range f.cfg.Fields {
		text, err := f.renderField(field, snap)
		if err != nil {
			f.logger.Debug().Err(err).Stringer("field", field).Msg("field rendered as placeholder")
			out = append(out, InfoLine{})
			continue
		}
		out = append(out, InfoLine{Text: text, OK: true})
	}
	return out
}

func (f *Formatter) renderField(field Field, snap hostfacts.Snapshot) (string, error) {
	switch field {
	case UserAtHostname:
		if snap.User == "" || snap.Hostname == "" {
			return "", errMissing
		}
		return f.accent(snap.User) + "@" + f.accent(snap.Hostname), nil
	case Os:
		return f.labelled(field, snap.OS)
	case Kernel:
		return f.labelled(field, snap.Kernel)
	case Memory:
		return f.usage(field, snap.Memory, mebibyte, "MiB")
	case Processor:
		return f.labelled(field, snap.CPU)
	case Shell:
		return f.labelled(field, snap.Shell)
	case Terminal:
		return f.labelled(field, snap.Terminal)
	case RootDisk:
		return f.usage(field, snap.RootDisk, gibibyte, "GiB")
	default:
		return "", fmt.Errorf("unhandled field %v", field)
	}
}

func (f *Formatter) accent(s string) string {
	return color.Colorize(s, f.cfg.Accent)
}

func (f *Formatter) labelled(field Field, value string) (string, error) {
	if value == "" {
		return "", errMissing
	}
	return f.accent(labels[field]) + " " + value, nil
}

// usage renders "<used><unit> / <total><unit>". Both operands come from the
// same Usage so they always share a scale.
func (f *Formatter) usage(field Field, u *hostfacts.Usage, scale float64, unit string) (string, error) {
	if u == nil {
		return "", errMissing
	}

	used, err := f.quantity(float64(u.Used())/scale, unit)
	if err != nil {
		return "", err
	}
	total, err := f.quantity(float64(u.Total)/scale, unit)
	if err != nil {
		return "", err
	}
	return f.accent(labels[field]) + " " + used + " / " + total, nil
}

func (f *Formatter) quantity(v float64, unit string) (string, error) {
	s, err := format.Humanize(v, f.cfg.Numeric)
	if err != nil {
		return "", err
	}
	if f.cfg.Numeric == format.Humanized {
		return s + " " + unit, nil
	}
	return s + unit, nil
}

// Lines replaces missing lines with Placeholder and wraps each line to the
// width left beside an art column of columnWidth cells.
func (f *Formatter) Lines(infos []InfoLine, columnWidth int) []string {
	limit := f.cfg.TermWidth - columnWidth

	var out []string
	for _, info := range infos {
		text := Placeholder
		if info.OK {
			text = info.Text
		}
		for _, fragment := range Wrap(text, limit) {
			if f.cfg.Uwu {
				fragment = uwu.Transform(fragment)
			}
			out = append(out, fragment)
		}
	}
	return out
}
