// Package color provides color profile detection and RGB accent handling
// for owofetch.
//
// It implements the NO_COLOR specification (https://no-color.org/) and
// automatic pipe/redirect detection. When color is disabled, lipgloss is
// set to the Ascii profile so all styled renders produce plain text.
package color

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// DecodeHex decodes exactly six hex digits (no leading '#') into an RGB.
func DecodeHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex color %q: want 6 digits, got %d", s, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// Colorize renders text in the foreground color c. Under the Ascii profile
// the text is returned without escape sequences.
func Colorize(text string, c RGB) string {
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(text)
}

// ShouldDisableColor returns true if color output should be suppressed.
// This happens when:
//   - The NO_COLOR environment variable is set (any value, per https://no-color.org/)
//   - stdout is not a terminal (pipe or redirect)
func ShouldDisableColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}

	return false
}

// Apply configures the global lipgloss renderer based on ShouldDisableColor.
// Returns true if color is enabled, false if disabled.
func Apply() bool {
	if ShouldDisableColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	}
	return true
}

// ForceDisable sets the lipgloss color profile to Ascii, unconditionally
// disabling all color output. This is useful for tests.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ForceTrueColor enables 24-bit output regardless of the attached terminal.
func ForceTrueColor() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
