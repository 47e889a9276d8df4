package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Cyclone1070/fsnav/internal/adapter"
	"github.com/Cyclone1070/fsnav/internal/config"
	"github.com/Cyclone1070/fsnav/internal/logging"
	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/Cyclone1070/fsnav/internal/tool/service/fs"
	"github.com/Cyclone1070/fsnav/internal/tool/workdir"
	"github.com/Cyclone1070/fsnav/internal/ui"
	"golang.org/x/term"
)

const defaultWrapWidth = 100

// options holds the persistent flags.
type options struct {
	baseDir  string
	logLevel string
	jsonOut  bool
	plain    bool
}

// app holds the streams and dependencies shared by every subcommand.
type app struct {
	opts options

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Injected for tests
	loadConfig func() (*config.Config, error)
	isTerminal func() bool
	termWidth  func() int

	cfg      *config.Config
	logger   *slog.Logger
	registry *adapter.Registry
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:         in,
		out:        out,
		errOut:     errOut,
		loadConfig: config.Load,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		termWidth: func() int {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil || w <= 0 {
				return defaultWrapWidth
			}
			return w
		},
	}
}

// init loads configuration, applies flag overrides and builds the tool registry.
func (a *app) init() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.opts.baseDir != "" {
		cfg.BaseDir = a.opts.baseDir
	}
	if a.opts.logLevel != "" {
		cfg.Log.Level = a.opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Log, a.errOut)
	osFS := fs.NewOSFileSystem()
	wd, err := workdir.New(osFS, cfg.BaseDir)
	if err != nil {
		return fmt.Errorf("failed to initialise working directory: %w", err)
	}

	session := &adapter.Session{
		WorkDir:  wd,
		Reporter: progress.NewLogReporter(logger),
		Logger:   logger,
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = adapter.NewRegistry(adapter.DefaultTools(session, osFS, cfg)...)
	return nil
}

// interactive reports whether progress should drive the spinner UI.
func (a *app) interactive() bool {
	return !a.opts.plain && !a.opts.jsonOut && a.isTerminal()
}

// runTool calls one tool and prints its result.
func (a *app) runTool(ctx context.Context, name string, args map[string]any) error {
	op := func(ctx context.Context) (string, error) {
		return a.registry.Call(ctx, name, args)
	}

	var result string
	var err error
	if a.interactive() {
		// Keep the debug log of events while the spinner shows them.
		ctx = progress.WithReporter(ctx, progress.NewLogReporter(a.logger))
		result, err = ui.RunWithProgress(ctx, a.errOut, name, op, ui.DefaultSpinner)
	} else {
		result, err = op(ctx)
	}
	if err != nil {
		return err
	}

	if a.opts.jsonOut {
		_, err := fmt.Fprintln(a.out, result)
		return err
	}
	return a.render(ui.FormatResult(name, result))
}

func (a *app) render(markdown string) error {
	var renderer ui.MarkdownRenderer = ui.PlainRenderer{}
	if a.interactive() {
		r, err := ui.NewGlamourRenderer("auto", a.termWidth())
		if err != nil {
			a.logger.Warn("markdown renderer unavailable", "error", err)
		} else {
			renderer = r
		}
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	_, err = io.WriteString(a.out, out)
	return err
}
