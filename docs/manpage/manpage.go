// Package manpage generates a roff-formatted man page for owofetch.
//
// The options, field names and art names are read from the running binary,
// so the page always matches the flags and assets that were compiled in.
//
// Usage:
//
//	owofetch man | man -l -
//	owofetch man > ~/.local/share/man/man1/owofetch.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gitlab.com/tinyland/lab/owofetch/display/art"
	"gitlab.com/tinyland/lab/owofetch/display/banner"
)

// Generate produces a complete roff-formatted man(1) page for owofetch.
// flags are the root command's flags; version, commit and date come from the
// build-time linker variables.
func Generate(flags *pflag.FlagSet, version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, version)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b, flags)
	writeFields(&b)
	writeArt(&b)
	writeConfiguration(&b)
	writeEnvironment(&b)
	writeFiles(&b)
	writeExamples(&b)
	writeExitStatus(&b)
	writeSeeAlso(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH OWOFETCH 1 \"%s\" \"owofetch %s\" \"User Commands\"\n", month, version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
owofetch \- uwuified system information banner
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B owofetch
[\fIOPTIONS\fR]
.br
.B owofetch
\fBversion\fR | \fBman\fR | \fBinit\-config\fR [\fIPATH\fR] | \fBcompletion\fR \fISHELL\fR
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B owofetch
prints the ASCII art of the running distribution with a column of system
facts beside it: user and host, OS, kernel, memory, CPU, shell, terminal
emulator and root disk usage.
.PP
The info column is word\-wrapped to the space left of the terminal width.
A fact that cannot be read on this host is shown as \fB?\fR.
.PP
By default every r and l in the info column becomes a w.
`)
}

func writeOptions(b *strings.Builder, flags *pflag.FlagSet) {
	b.WriteString(".SH OPTIONS\n")
	if flags == nil {
		return
	}

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		b.WriteString(".TP\n")

		name := `\-\-` + roffEscape(f.Name)
		if f.Shorthand != "" {
			name = `\-` + f.Shorthand + ", " + name
		}
		if arg := f.Value.Type(); arg != "bool" && arg != "count" {
			fmt.Fprintf(b, ".BR \"%s\" \" \\fI%s\\fR\"\n", name, argName(arg))
		} else {
			fmt.Fprintf(b, ".B %s\n", name)
		}

		b.WriteString(roffEscape(f.Usage))
		if def := f.DefValue; def != "" && def != "false" && def != "0" && def != "[]" {
			fmt.Fprintf(b, " Default: %s.", roffEscape(def))
		}
		b.WriteString("\n")
	})
}

// argName turns a pflag value type into a placeholder for the synopsis.
func argName(typ string) string {
	if typ == "stringSlice" {
		return "LIST"
	}
	return strings.ToUpper(typ)
}

func writeFields(b *strings.Builder) {
	b.WriteString(`.SH FIELDS
Field names for \fB\-\-values\fR and the \fBfields\fR config key are matched
case\-insensitively. The default order is:
`)
	for _, name := range banner.FieldNames() {
		fmt.Fprintf(b, ".IP \\(bu 2\n%s\n", name)
	}
}

func writeArt(b *strings.Builder) {
	b.WriteString(`.SH ART
With \fB\-\-art auto\fR the art is chosen from the OS name, falling back to
\fBdefault\fR. The compiled\-in art is:
`)
	for _, name := range art.Names() {
		fmt.Fprintf(b, ".IP \\(bu 2\n%s\n", name)
	}
}

func writeConfiguration(b *strings.Builder) {
	b.WriteString(`.SH CONFIGURATION
Configuration is read from a YAML file at
.B $XDG_CONFIG_HOME/owofetch/config.yaml
by default, or from the path given with \fB\-\-config\fR. Environment
variables override the file, and flags override both.
.TP
.B color
Label color as "#RRGGBB". Default: "#FFA500".
.TP
.B fields
List of field names to show, in order. Default: all.
.TP
.B humanize
Spell memory and disk sizes as approximate English words. Default: false.
.TP
.B uwu
Rewrite the info column. Default: true.
.TP
.B art
Art name or "auto". Default: "auto".
.TP
.B term_width
Terminal width override; 0 detects it. Default: 0.
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B OWOFETCH_COLOR, OWOFETCH_FIELDS, OWOFETCH_HUMANIZE
.TQ
.B OWOFETCH_UWU, OWOFETCH_ART, OWOFETCH_TERM_WIDTH
Override the matching configuration key. Fields are comma separated.
.TP
.B NO_COLOR
Disable colored output when set to any value.
.TP
.B COLUMNS
Terminal width used when stdout is not a terminal.
.TP
.B XDG_CONFIG_HOME
Base directory of the configuration file.
.TP
.B USER, SHELL
Reported as the user and shell fields.
`)
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/owofetch/config.yaml
Configuration file (YAML). Create it with \fBowofetch init\-config\fR.
.TP
.I /etc/os\-release
Source of the OS name.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Show only the OS and kernel in blue:
.PP
.nf
owofetch \-c "#1793D1" \-v Os,Kernel
.fi
.PP
Approximate sizes without the uwu rewrite:
.PP
.nf
owofetch \-\-humanize \-\-no\-uwu
.fi
.PP
Install the man page:
.PP
.nf
owofetch man > ~/.local/share/man/man1/owofetch.1
.fi
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\nSuccess.\n")
	b.WriteString(".TP\n.B 1\nAn embedded art asset is malformed or host facts could not be collected.\n")
	b.WriteString(".TP\n.B 2\nInvalid color, field name, art name or other configuration value.\n")
}

func writeSeeAlso(b *strings.Builder) {
	b.WriteString(`.SH SEE ALSO
.BR neofetch (1),
.BR fastfetch (1),
.BR os\-release (5)
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)
}
