package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
)

type cli struct {
	Config    string           `help:"Path to the YAML config file." default:"${config_path}"`
	Duration  int              `short:"d" help:"Initial duration in seconds."`
	Theme     string           `short:"t" help:"Initial theme identifier."`
	LogFile   string           `help:"Write structured logs to this file. A bare name is placed in the state directory."`
	LogLevel  string           `help:"Log level (trace, debug, info, warn, error)."`
	LogFormat string           `enum:"json,terminal" default:"json" help:"Log format (json, terminal)."`
	Version   kong.VersionFlag `help:"Print version and exit."`
}

func newParser(c *cli) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name(config.AppName),
		kong.Description("A terminal countdown timer."),
		kong.Vars{
			"version":     tui.VersionLabel(),
			"config_path": config.DefaultPath(),
		},
	)
}

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "countdown needs an interactive terminal.")
		os.Exit(1)
	}

	if err := run(c); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the log file for the lifetime of the program.
func run(c cli) error {
	opts, closer, err := buildOptions(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		opts.Logger.Error().Err(err).Msg("program stopped by error")
		return err
	}
	opts.Logger.Info().Msg("stopped")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildOptions merges the config file with command line flags. Flags win.
func buildOptions(c cli) (tui.Options, io.Closer, error) {
	var closer io.Closer = nopCloser{}

	cfg, err := config.Load(util.ExpandHome(c.Config))
	if err != nil {
		return tui.Options{}, closer, err
	}

	level := cfg.LogLevel
	if c.LogLevel != "" {
		level = c.LogLevel
	}
	if _, err := util.ParseLogLevel(level); err != nil {
		return tui.Options{}, closer, err
	}

	logger := zerolog.Nop()
	if c.LogFile != "" {
		out, err := util.LogOutput(util.LogPath(config.AppName, c.LogFile))
		if err != nil {
			return tui.Options{}, closer, err
		}
		closer = out
		logger, err = util.SetupLogging(out, level, c.LogFormat)
		if err != nil {
			_ = out.Close()
			return tui.Options{}, nopCloser{}, err
		}
	}

	if c.Duration < 0 {
		return tui.Options{}, closer, errors.Errorf("duration must not be negative, got %d", c.Duration)
	}
	duration := cfg.Duration
	if c.Duration > 0 {
		duration = c.Duration
	}
	theme := cfg.DefaultTheme
	if c.Theme != "" {
		theme = c.Theme
	}

	logger = util.Module(logger, "main")
	logger.Info().Int("duration", duration).Str("theme", theme).Msg("starting")

	return tui.Options{
		Themes:   cfg.ThemeList(),
		Theme:    theme,
		Duration: duration,
		Logger:   &logger,
	}, closer, nil
}
