package format

import (
	"fmt"
	"math"
	"strconv"
)

// Mode selects how quantities are rendered.
type Mode uint8

const (
	// Precise renders a fixed two-decimal value.
	Precise Mode = iota
	// Humanized renders an approximate value spelled out in English words.
	Humanized
)

// String returns the mode name used in config files.
func (m Mode) String() string {
	switch m {
	case Precise:
		return "precise"
	case Humanized:
		return "humanized"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// FormatError reports a value that cannot be rendered.
type FormatError struct {
	Value  float64
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %v: %s", e.Value, e.Reason)
}

// maxHumanized bounds humanized input so the rounded result fits a uint64.
const maxHumanized = 1e19

// Humanize renders v according to mode.
//
// Humanized output is deliberately lossy: v is divided by ten while it
// exceeds 99, rounded, and scaled back, so at most two significant figures
// survive. 128000 becomes "About one hundred and thirty thousand".
func Humanize(v float64, mode Mode) (string, error) {
	switch {
	case math.IsNaN(v):
		return "", &FormatError{Value: v, Reason: "not a number"}
	case math.IsInf(v, 0):
		return "", &FormatError{Value: v, Reason: "infinite"}
	case v < 0:
		return "", &FormatError{Value: v, Reason: "negative"}
	case mode == Humanized && v >= maxHumanized:
		return "", &FormatError{Value: v, Reason: "too large to spell out"}
	}

	if mode == Precise {
		return strconv.FormatFloat(v, 'f', 2, 64), nil
	}

	k := 0
	for v > 99 {
		v /= 10
		k++
	}

	n := uint64(math.Round(v))
	for ; k > 0; k-- {
		n *= 10
	}
	return "About " + Words(n), nil
}
