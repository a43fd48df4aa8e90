package manpage

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("owofetch", pflag.ContinueOnError)
	fs.StringP("color", "c", "#FFA500", "Color of the info labels.")
	fs.StringSliceP("values", "v", nil, "Only show these fields.")
	fs.Bool("no-uwu", false, "Print the info column unmodified.")
	fs.Int("term-width", 0, "Terminal width override.")
	fs.Count("verbose", "Increase verbosity.")
	fs.String("secret", "", "hidden")
	_ = fs.MarkHidden("secret")
	return fs
}

func TestGenerate_ValidRoff(t *testing.T) {
	page := Generate(testFlags(), "0.1.0", "abc1234", "2026-02-06")

	// Must start with .TH header.
	if !strings.HasPrefix(page, ".TH OWOFETCH 1") {
		t.Errorf("man page should start with .TH header, got: %s", page[:40])
	}

	requiredSections := []string{
		".SH NAME",
		".SH SYNOPSIS",
		".SH DESCRIPTION",
		".SH OPTIONS",
		".SH FIELDS",
		".SH ART",
		".SH CONFIGURATION",
		".SH ENVIRONMENT",
		".SH FILES",
		".SH EXAMPLES",
		".SH EXIT STATUS",
		".SH SEE ALSO",
		".SH VERSION",
	}

	for _, section := range requiredSections {
		if !strings.Contains(page, section) {
			t.Errorf("man page missing required section: %s", section)
		}
	}
}

func TestGenerate_ContainsVersion(t *testing.T) {
	page := Generate(testFlags(), "1.2.3", "deadbeef", "2026-02-06")

	if !strings.Contains(page, "1.2.3") {
		t.Error("man page should contain the version string")
	}
	if !strings.Contains(page, "deadbeef") {
		t.Error("man page should contain the commit hash")
	}
}

func TestGenerate_Options(t *testing.T) {
	page := Generate(testFlags(), "0.1.0", "dev", "unknown")

	expected := []string{
		`.BR "\-c, \-\-color" " \fISTRING\fR"`,
		`.BR "\-v, \-\-values" " \fILIST\fR"`,
		`.B \-\-no\-uwu`,
		`.B \-\-verbose`,
		`Default: #FFA500.`,
	}
	for _, want := range expected {
		if !strings.Contains(page, want) {
			t.Errorf("man page missing option line %q", want)
		}
	}
	if strings.Contains(page, "secret") {
		t.Error("hidden flags must not be documented")
	}
}

func TestGenerate_NilFlags(t *testing.T) {
	page := Generate(nil, "0.1.0", "dev", "unknown")
	if !strings.Contains(page, ".SH OPTIONS\n.SH FIELDS") {
		t.Error("expected an empty OPTIONS section")
	}
}

func TestGenerate_ListsFieldsAndArt(t *testing.T) {
	page := Generate(testFlags(), "0.1.0", "dev", "unknown")

	for _, name := range []string{"UserAtHostname", "RootDisk", "Processor", "arch", "debian", "default"} {
		if !strings.Contains(page, name) {
			t.Errorf("man page missing %q", name)
		}
	}
}

func TestGenerate_ContainsEnvironmentVars(t *testing.T) {
	page := Generate(testFlags(), "0.1.0", "dev", "unknown")

	for _, envVar := range []string{"OWOFETCH_COLOR", "OWOFETCH_TERM_WIDTH", "NO_COLOR", "COLUMNS"} {
		if !strings.Contains(page, envVar) {
			t.Errorf("man page missing environment variable: %s", envVar)
		}
	}
}

func TestRoffEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"no-uwu", `no\-uwu`},
		{"e.g.", `e\&.g\&.`},
		{`foo\bar`, `foo\\bar`},
	}

	for _, tt := range tests {
		got := roffEscape(tt.input)
		if got != tt.expected {
			t.Errorf("roffEscape(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
