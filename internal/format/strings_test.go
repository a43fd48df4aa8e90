package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "hello", want: 5},
		{name: "ascii with spaces", in: "  /\\  ", want: 6},
		{name: "precomposed accent", in: "café", want: 4},
		{name: "combining accent counts once", in: "cafe\u0301", want: 4},
		{name: "box drawing", in: "───", want: 3},
		{name: "wide cjk", in: "日本", want: 4},
		{name: "ansi sequences ignored", in: "\x1b[38;2;255;165;0mOS:\x1b[0m", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.in))
		})
	}
}

func TestWidthSingleCellMatchesRuneCount(t *testing.T) {
	inputs := []string{"", "a", "Arch Linux", "`-+osssssso+-`", "été", "│ │"}
	for _, in := range inputs {
		assert.Equal(t, len([]rune(in)), Width(in), "input %q", in)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "pads ascii", in: "ab", width: 5, want: "ab   "},
		{name: "already wide enough", in: "abcdef", width: 3, want: "abcdef"},
		{name: "exact", in: "abc", width: 3, want: "abc"},
		{name: "combining mark padded by cells", in: "e\u0301", width: 3, want: "e\u0301  "},
		{name: "empty", in: "", width: 2, want: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadRight(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			if Width(tt.in) <= tt.width {
				assert.Equal(t, tt.width, Width(got))
			}
		})
	}
}
