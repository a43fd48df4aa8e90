package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitlab.com/tinyland/lab/owofetch/collectors/hostfacts"
	"gitlab.com/tinyland/lab/owofetch/config"
	"gitlab.com/tinyland/lab/owofetch/display/art"
	"gitlab.com/tinyland/lab/owofetch/display/banner"
	"gitlab.com/tinyland/lab/owofetch/display/color"
	"gitlab.com/tinyland/lab/owofetch/docs/manpage"
	"gitlab.com/tinyland/lab/owofetch/internal/logging"
)

// Exit codes.
const (
	exitOK     = 0
	exitAsset  = 1
	exitConfig = 2
)

// snapshotter is satisfied by *hostfacts.Collector.
type snapshotter interface {
	Collect(ctx context.Context) (*hostfacts.Result, error)
}

// options holds the command-line flags.
type options struct {
	configPath string
	color      string
	values     []string
	humanize   bool
	noUwu      bool
	art        string
	termWidth  int
	verbosity  int
}

// app holds the parsed flags and the collaborators used by run.
type app struct {
	opts         options
	newCollector func(logger zerolog.Logger) snapshotter
	applyColor   func() bool
}

func newApp() *app {
	return &app{
		newCollector: func(logger zerolog.Logger) snapshotter {
			return hostfacts.NewCollector(logger)
		},
		applyColor: color.Apply,
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owofetch",
		Short: "uwuified *fetch alternative",
		Long: `owofetch prints a system summary beside the ASCII art of your distribution.

Configuration is read from ` + config.DefaultPath() + `, then OWOFETCH_*
environment variables, then flags.

With --humanize, memory and disk sizes are spelled out as approximate English
words (two significant figures), not exact values.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(a.opts.verbosity, cmd.ErrOrStderr())
			logger := logging.Get("cli")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&a.opts.color, "color", "c", banner.DefaultAccent.Hex(),
		"Color of the info labels in RGB hex. Does not affect the art or the values.")
	flags.StringSliceVarP(&a.opts.values, "values", "v", nil,
		"Only show these fields, in order: "+strings.Join(banner.FieldNames(), ", "))
	flags.BoolVar(&a.opts.humanize, "humanize", false, "Spell quantities as approximate English words")
	flags.BoolVar(&a.opts.noUwu, "no-uwu", false, "Print the info column unmodified")
	flags.StringVar(&a.opts.art, "art", config.ArtAuto,
		"Art to draw: "+config.ArtAuto+", "+strings.Join(art.Names(), ", "))
	flags.IntVar(&a.opts.termWidth, "term-width", 0, "Terminal width override (0 = auto-detect)")
	cmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "Path to configuration file (default: "+config.DefaultPath()+")")
	cmd.PersistentFlags().CountVar(&a.opts.verbosity, "verbose", "Increase verbosity (--verbose, repeat for more)")

	cmd.AddCommand(versionCmd(), manCmd(), a.initConfigCmd(), completionCmd())
	return cmd
}

// loadConfig layers explicitly set flags over the file and environment.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(a.opts.configPath)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &config.ConfigError{Key: "config", Value: a.opts.configPath, Err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = a.opts.color
	}
	if flags.Changed("values") {
		cfg.Fields = a.opts.values
	}
	if flags.Changed("humanize") {
		cfg.Humanize = a.opts.humanize
	}
	if flags.Changed("no-uwu") {
		cfg.Uwu = !a.opts.noUwu
	}
	if flags.Changed("art") {
		cfg.Art = a.opts.art
	}
	if flags.Changed("term-width") {
		cfg.TermWidth = a.opts.termWidth
	}
	return cfg, nil
}

func (a *app) run(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Get("owofetch")

	colorEnabled := a.applyColor()
	logger.Debug().Bool("color", colorEnabled).Msg("color profile applied")

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	rc, err := config.Resolve(cfg)
	if err != nil {
		return err
	}

	res, err := a.newCollector(logging.Get("hostfacts")).Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect host facts: %w", err)
	}
	for _, w := range res.Warnings {
		logger.Info().Msg(w)
	}
	logger.Debug().
		Time("collected_at", res.Timestamp).
		Int("warnings", len(res.Warnings)).
		Msg("host facts collected")
	logger.Trace().Interface("snapshot", res.Snapshot).Msg("snapshot")

	asset, err := art.Select(res.Snapshot.OS, cfg.Art)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("art", asset.Name).
		Str("accent", asset.Accent.Hex()).
		Int("term_width", rc.TermWidth).
		Stringer("numbers", rc.Numeric).
		Msg("rendering")

	return render(cmd.OutOrStdout(), rc, asset, res.Snapshot, logging.Get("banner"))
}

// render writes the merged banner for snap beside asset.
func render(w io.Writer, rc banner.RenderConfig, asset art.Asset, snap hostfacts.Snapshot, logger zerolog.Logger) error {
	padded := art.Prepare(asset)

	f := banner.NewFormatter(rc, logger)
	info := f.Lines(f.Render(snap), padded.ColumnWidth)

	for line := range banner.Merge(padded.Lines, info, asset.Accent, padded.ColumnWidth) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if a.opts.configPath != "" {
				path = a.opts.configPath
			}
			if len(args) == 1 {
				path = args[0]
			}
			if !force && fileExists(path) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func manCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: "Print the man page in roff format",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			root := cmd.Root()
			flags := pflag.NewFlagSet(root.Name(), pflag.ContinueOnError)
			flags.AddFlagSet(root.Flags())
			flags.AddFlagSet(root.PersistentFlags())
			fmt.Fprint(cmd.OutOrStdout(), manpage.Generate(flags, version, commit, date))
		},
	}
}

func completionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// exitCode maps an error returned by the command tree to a process status.
// Configuration mistakes exit 2; broken assets and collection failures exit 1.
func exitCode(err error) int {
	var cfgErr *config.ConfigError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &cfgErr), errors.Is(err, art.ErrUnknownArt):
		return exitConfig
	default:
		return exitAsset
	}
}
