package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zgpcy/fractime/internal/clock"
	"github.com/zgpcy/fractime/internal/config"
	"github.com/zgpcy/fractime/internal/logger"
	"github.com/zgpcy/fractime/internal/render"
	"github.com/zgpcy/fractime/internal/version"
)

// Options carries the command's collaborators so tests can replace them.
type Options struct {
	Clock  clock.Clock
	Stdout io.Writer
	Stderr io.Writer
}

type flagValues struct {
	lang     string
	format   string
	logLevel string
}

// NewRootCommand builds the fractime command.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	var flags flagValues

	cmd := &cobra.Command{
		Use:   "fractime [flags] [H:MM]",
		Short: "Tell the time as a fraction of the hour",
		Long: `fractime prints the current time, or the H:MM time given as an argument,
as the fraction of the hour that has passed, in English or German.

Malformed times are ignored and the system clock is used instead.`,
		Example: `  fractime 10:15
  fractime -l de 10:30
  fractime --fmt both 9:40`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, flags, args)
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	fs := cmd.Flags()
	fs.StringVarP(&flags.lang, "lang", "l", "", "language: 'de', 'en' (default from $LANG)")
	fs.StringVarP(&flags.format, "fmt", "f", "", "format: 'w', 'words', 'Wörter', 'n', 'numbers', 'Ziffern', 'b', 'both', 'beides'")
	fs.StringVar(&flags.format, "format", "", "alias for --fmt")
	fs.StringVarP(&flags.format, "output", "o", "", "alias for --fmt")
	fs.StringVar(&flags.format, "out", "", "alias for --fmt")
	fs.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func run(opts Options, flags flagValues, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cfg, flags)

	log := logger.New(opts.Stderr, cfg.LogLevel)
	log.Debug("fractime starting", "version", version.Info())
	log.Debug("Configuration loaded",
		"lang", cfg.Lang,
		"format", cfg.Format,
		"log_level", cfg.LogLevel)

	if !config.IsKnownLanguage(cfg.Lang) {
		log.Debug("Unsupported language, using English", "lang", cfg.Lang)
	}
	if !config.IsKnownFormat(cfg.Format) {
		log.Debug("Unknown format, using words", "format", cfg.Format)
	}

	t := clock.Resolve(opts.Clock, args, func(arg string, err error) {
		log.Debug("Ignoring argument", "arg", arg, "error", err)
	})

	renderLog := log.WithFields("time", t.String(), "lang", cfg.Language())
	lines, err := render.Render(t, cfg.Language(), cfg.OutputFormat())
	if err != nil {
		renderLog.Error("Failed to render time", "error", err)
		return err
	}
	renderLog.Debug("Rendered time", "format", cfg.OutputFormat(), "lines", len(lines))

	for _, line := range lines {
		if _, err := fmt.Fprintln(opts.Stdout, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// applyFlags layers explicitly set flags over the environment.
func applyFlags(cfg *config.Config, flags flagValues) {
	if flags.lang != "" {
		cfg.Lang = flags.lang
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
}

// Execute runs fractime against the process arguments and returns the exit code.
func Execute() int {
	return execute(NewRootCommand(Options{}))
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
