package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/weavesolve/dictionary"
	"github.com/katalvlaran/weavesolve/internal/config"
	"github.com/katalvlaran/weavesolve/internal/logging"
	"github.com/katalvlaran/weavesolve/internal/render"
	"github.com/katalvlaran/weavesolve/internal/telemetry"
	"github.com/katalvlaran/weavesolve/ladder"
)

// usageError marks command-line mistakes (exit status 2).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// options holds the raw flag values.
type options struct {
	configPath  string
	dict        string
	length      int
	color       string
	noColor     bool
	jsonOut     bool
	verbose     bool
	maxDepth    int
	trace       string
	version     bool
	printConfig bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "weavesolve [flags] START STOP",
		Short: "Find a shortest word ladder between two words",
		Long: `weavesolve changes one letter at a time to get from START to STOP,
using only dictionary words, and prints one shortest ladder.

Letters that already match STOP are highlighted.`,
		Example: `  weavesolve cold warm
  weavesolve --dict system --length 5 sheep goats
  weavesolve --json head tail`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.version || opts.printConfig {
				return nil
			}
			if len(args) != 2 {
				return &usageError{fmt.Errorf("expected START and STOP, got %d argument(s)", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	fs := cmd.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default $"+config.EnvPath+")")
	fs.StringVarP(&opts.dict, "dict", "d", "embedded", `dictionary: "embedded", "system", or a word file path`)
	fs.IntVarP(&opts.length, "length", "l", 0, "word length for the system dictionary (default: length of START)")
	fs.StringVar(&opts.color, "color", config.ColorAuto, "highlight matching letters: auto, always, never")
	fs.BoolVar(&opts.noColor, "no-color", false, "same as --color=never")
	fs.BoolVarP(&opts.jsonOut, "json", "j", false, "print the ladder as JSON")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")
	fs.IntVar(&opts.maxDepth, "max-depth", 0, "give up on ladders longer than this many steps (0 = no limit)")
	fs.StringVar(&opts.trace, "trace", telemetry.ExporterNone, "OpenTelemetry exporter: none, stdout")
	fs.BoolVarP(&opts.version, "version", "V", false, "print version information")
	fs.BoolVar(&opts.printConfig, "print-config", false, "print the effective configuration as YAML and exit")

	return cmd
}

// run executes one query. Flags explicitly set on the command line override
// the config file.
func run(ctx context.Context, fs *pflag.FlagSet, opts *options, args []string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.version {
		_, err := fmt.Fprintf(stdout, "weavesolve version %s\n", version)
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return &usageError{err}
	}
	applyFlags(fs, opts, &cfg)
	if err := cfg.Validate(); err != nil {
		return &usageError{err}
	}
	if opts.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return &usageError{err}
	}
	logger := logging.New(logging.Config{
		Level:   level,
		JSON:    cfg.Log.Format == "json",
		Writer:  stderr,
		Service: "weavesolve",
	})

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "weavesolve",
		ServiceVersion: version,
		Exporter:       cfg.Telemetry.Exporter,
		Writer:         stderr,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	start, stop := args[0], args[1]
	length := cfg.Length
	if length == 0 {
		length = len([]rune(strings.TrimSpace(start)))
	}
	words, err := dictionary.Open(cfg.Dictionary, length)
	if err != nil {
		return err
	}
	logger.Debug("dictionary loaded", "source", cfg.Dictionary, "words", len(words))

	l, err := ladder.New(words,
		ladder.WithContext(ctx),
		ladder.WithLogger(logger),
		ladder.WithMaxDepth(cfg.MaxDepth),
	)
	if err != nil {
		return err
	}

	path, err := l.Solve(ctx, start, stop)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return render.JSON(stdout, path)
	}
	return render.Path(stdout, path, path[len(path)-1], render.Options{Color: useColor(cfg.Color, stdout)})
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(fs *pflag.FlagSet, opts *options, cfg *config.Config) {
	if fs.Changed("dict") {
		cfg.Dictionary = opts.dict
	}
	if fs.Changed("length") {
		cfg.Length = opts.length
	}
	if fs.Changed("color") {
		cfg.Color = opts.color
	}
	if opts.noColor {
		cfg.Color = config.ColorNever
	}
	if fs.Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	if fs.Changed("trace") {
		cfg.Telemetry.Exporter = opts.trace
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
}

// useColor resolves a color mode against the output writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
