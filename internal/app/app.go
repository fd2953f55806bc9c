package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/studyloadgo/internal/cli"
	"github.com/vk/studyloadgo/internal/config"
	"github.com/vk/studyloadgo/internal/ctxlog"
	"github.com/vk/studyloadgo/internal/executor"
)

// App encapsulates the pipeline's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	opts     *cli.Options
	settings *config.Settings
	runner   executor.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A nil runner selects
// the real JVM runner; tests pass a stub. A failure to resolve settings is a
// fatal startup error and panics; the caller recovers it.
func NewApp(outW io.Writer, opts *cli.Options, runner executor.Runner) *App {
	logger := newLogger(opts.LogLevel, opts.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := config.Resolve(ctx, opts.SettingsPath, config.Overrides{
		JarPath:        opts.JarPath,
		PortalHome:     opts.PortalHome,
		PropertiesPath: opts.PropertiesPath,
	})
	if err != nil {
		panic(fmt.Errorf("failed to resolve settings: %w", err))
	}

	if runner == nil {
		runner = &executor.JavaRunner{JavaBin: settings.JavaBin, Out: outW}
	}

	return &App{
		outW:     outW,
		logger:   logger,
		opts:     opts,
		settings: settings,
		runner:   runner,
	}
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}
