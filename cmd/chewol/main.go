// Package main is the entry point for the chewol editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"

	"github.com/dshills/chewol/internal/app"
	"github.com/dshills/chewol/internal/config"
	"github.com/dshills/chewol/internal/filetype"
	"github.com/dshills/chewol/internal/logging"
	"github.com/dshills/chewol/internal/renderer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	Config     flags.Filename `short:"c" long:"config" description:"path to the config file"`
	LogLevel   string         `long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFile    flags.Filename `long:"log-file" description:"append logs to this file"`
	ProfileDir flags.Filename `long:"profile-dir" description:"directory of language profile files"`
	Watch      bool           `short:"w" long:"watch-profiles" description:"reload language profiles when they change"`
	Version    bool           `short:"v" long:"version" description:"show version information"`

	Positional struct {
		File flags.Filename `positional-arg-name:"file" description:"file to edit"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 2
	}

	if opts.Version {
		fmt.Printf("chewol %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog.Close()

	theme := renderer.DefaultTheme()
	if err := theme.Override(cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	registry := loadProfiles(cfg.ProfileDir, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	application := app.New(screen, app.Options{
		Filename:       string(opts.Positional.File),
		Registry:       registry,
		Theme:          theme,
		QuitTimes:      cfg.QuitTimes,
		MessageTimeout: cfg.MessageTimeout.Duration,
		Version:        version,
		Logger:         logger,
	})

	if cfg.WatchProfiles {
		watcher, err := watchProfiles(cfg.ProfileDir, screen, logger)
		if err != nil {
			logger.Warn("profile watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	// Finalizing the screen stops the event loop.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			logger.Info("terminating on signal")
			screen.Fini()
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrScreenClosed) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	fp := flags.NewParser(opts, flags.Default)
	fp.Usage = "[options] [file]"
	fp.LongDescription = `chewol is a small terminal text editor with syntax highlighting.

Keys: Ctrl-S save, Ctrl-F find, Ctrl-Q quit.`
	if _, err := fp.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// loadConfig resolves settings from defaults, the config file, the
// environment and finally the command line.
func loadConfig(opts *options) (*config.Config, error) {
	path := string(opts.Config)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.LogFile = string(opts.LogFile)
	}
	if opts.ProfileDir != "" {
		cfg.ProfileDir = string(opts.ProfileDir)
	}
	if opts.Watch {
		cfg.WatchProfiles = true
	}
	cfg.LogFile = config.ExpandPath(cfg.LogFile)
	cfg.ProfileDir = config.ExpandPath(cfg.ProfileDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger opens the configured log file. The terminal belongs to the
// editor, so without a log file all logging is discarded.
func openLogger(cfg *config.Config) (*logging.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return logging.Null(), nopCloser{}, nil
	}
	return logging.OpenFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadProfiles returns the built-in profiles plus those in dir. Profiles
// that fail to load are logged and skipped.
func loadProfiles(dir string, logger *logging.Logger) *filetype.Registry {
	registry := filetype.Default()
	if dir == "" {
		return registry
	}
	if err := registry.LoadDir(dir); err != nil {
		logger.Warn("loading profiles: %v", err)
	}
	logger.Info("%d language profiles available", registry.Len())
	return registry
}

func watchProfiles(dir string, screen tcell.Screen, logger *logging.Logger) (*filetype.Watcher, error) {
	if dir == "" {
		return nil, errors.New("no profile directory")
	}
	return filetype.NewWatcher(dir, func(reg *filetype.Registry, err error) {
		if perr := app.PostRegistry(screen, reg, err); perr != nil {
			logger.Warn("dropping profile reload: %v", perr)
		}
	}, filetype.WithWatcherLogger(logger))
}
