// Package main implements the entry point for Toastkit.
//
// This package handles:
//   - Command line flags and TOASTKIT_* environment variables
//   - Loading the YAML configuration and applying flag overrides
//   - Logger setup (the TUI owns the terminal, so logs go to a file)
//   - Signal handling for clean shutdown
//   - TUI initialization and execution
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"toastkit/internal"
	"toastkit/internal/log"
	loglogrus "toastkit/internal/log/logrus"
	"toastkit/internal/toast"
)

const (
	loggerTypeDefault = "default"
	loggerTypeJSON    = "json"
)

// cmdConfig holds the command line flags.
type cmdConfig struct {
	Debug      bool
	NoLog      bool
	LoggerType string
	LogFile    string
	ConfigPath string

	Duration          time.Duration
	DurationSet       bool
	AnimationDuration time.Duration
	Placement         string
	Animation         string
	ASCII             bool
	Monitor           bool
}

func newCmdConfig(app *kingpin.Application) *cmdConfig {
	c := &cmdConfig{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("logger", "Selects the logger type.").Default(loggerTypeDefault).EnumVar(&c.LoggerType, loggerTypeDefault, loggerTypeJSON)
	app.Flag("log-file", "Log file path.").Default(internal.LogFilePath()).StringVar(&c.LogFile)
	app.Flag("config", "Configuration file path.").StringVar(&c.ConfigPath)

	app.Flag("duration", "Auto-dismiss delay of toasts, 0 keeps them until dismissed.").IsSetByUser(&c.DurationSet).DurationVar(&c.Duration)
	app.Flag("animation-duration", "Entrance and exit animation duration.").DurationVar(&c.AnimationDuration)
	app.Flag("placement", "Where toasts appear.").EnumVar(&c.Placement, toast.PlacementTop.String(), toast.PlacementBottom.String())
	app.Flag("animation", "Toast entrance animation.").EnumVar(&c.Animation, toast.AnimationSlideIn.String(), toast.AnimationZoomIn.String())
	app.Flag("ascii", "Use ASCII symbols only.").BoolVar(&c.ASCII)
	app.Flag("monitor", "Push toasts when memory or CPU usage crosses a threshold.").BoolVar(&c.Monitor)

	return c
}

// Run runs the main application.
func Run(ctx context.Context, args []string) error {
	app := kingpin.New("toastkit", internal.AppDesc+".")
	app.Version(internal.GetFullVersionString())
	app.DefaultEnvars()
	cmdCfg := newCmdConfig(app)

	if _, err := app.Parse(args[1:]); err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	logger, closeLog, err := getLogger(*cmdCfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cfgPath, cfg, err := loadConfig(*cmdCfg, logger)
	if err != nil {
		return err
	}
	if cfg.Display.ASCII {
		internal.ForceASCII()
	}

	m := internal.InitialModel(cfg,
		internal.WithConfigPath(cfgPath),
		internal.WithLogger(logger),
	)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// TUI.
	{
		g.Add(
			func() error {
				_, err := p.Run()
				if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
					return fmt.Errorf("running TUI: %w", err)
				}
				return nil
			},
			func(_ error) {
				p.Kill()
			},
		)
	}

	return g.Run()
}

// loadConfig loads the configuration file and applies flag overrides. A
// missing file is fine: the defaults are used and the file is created the
// first time a setting is changed.
func loadConfig(c cmdConfig, logger log.Logger) (string, internal.Config, error) {
	path := c.ConfigPath
	if path == "" {
		var err error
		path, err = internal.ConfigPath()
		if err != nil {
			return "", internal.Config{}, err
		}
	}

	cfg, err := internal.LoadConfig(path)
	switch {
	case errors.Is(err, internal.ErrConfigNotFound):
		logger.Debugf("No config file at %s, using defaults", path)
	case err != nil:
		return "", internal.Config{}, fmt.Errorf("could not load config %s: %w", path, err)
	}

	if c.DurationSet {
		cfg.Toast.Duration = c.Duration
	}
	if c.AnimationDuration > 0 {
		cfg.Toast.AnimationDuration = c.AnimationDuration
	}
	if c.Placement != "" {
		cfg.Toast.Placement = c.Placement
	}
	if c.Animation != "" {
		cfg.Toast.Animation = c.Animation
	}
	if c.ASCII {
		cfg.Display.ASCII = true
	}
	if c.Monitor {
		cfg.Monitor.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return "", internal.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return path, cfg, nil
}

// getLogger returns the application logger writing to the log file.
func getLogger(c cmdConfig) (log.Logger, func(), error) {
	if c.NoLog {
		return log.Noop, func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	logrusLog := logrus.New()
	logrusLog.Out = f
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if c.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	switch c.LoggerType {
	case loggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case loggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": internal.AppVersion,
	})
	logger.Debugf("Debug level is enabled")

	return logger, func() { f.Close() }, nil
}

func main() {
	ctx := context.Background()
	if err := Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
