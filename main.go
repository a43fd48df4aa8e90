// owofetch prints an uwuified system summary beside the ASCII art of the
// running distribution.
//
// Usage:
//
//	owofetch [flags]
//	owofetch version
//	owofetch init-config [path]
//	owofetch completion bash|zsh|fish|powershell
//
// Flags:
//
//	-c, --color string     Label color in RGB hex (default "#FFA500")
//	-v, --values strings   Only show these fields, in order
//	    --humanize         Spell quantities as approximate English words
//	    --no-uwu           Print the info column unmodified
//	    --art string       auto, arch, debian or default (default "auto")
//	    --term-width int   Terminal width override (0 = auto-detect)
//	    --config string    Path to configuration file
//	    --verbose          Increase verbosity (repeatable)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gitlab.com/tinyland/lab/owofetch/config"
)

func main() {
	os.Exit(execute(context.Background()))
}

func execute(ctx context.Context) int {
	a := newApp()
	cmd := a.rootCmd()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(os.Stderr, "owofetch: %v\n", err)
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}
	return exitCode(err)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
