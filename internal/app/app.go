package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/fsutil"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the fully
// loaded sweep model.
func NewApp(outW io.Writer, appConfig *Config, loaders ...config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Discover definition files per loader and load everything into the
	// format-agnostic model first. Files are routed by extension, so each
	// loader only ever sees its own format.
	model := config.NewModel()
	for _, loader := range loaders {
		files, err := fsutil.FindFilesByExtension(appConfig.SweepPath, loader.Extensions()...)
		if err != nil {
			// A failure to discover sweep files is a fatal startup error.
			panic(fmt.Errorf("failed to discover sweep files: %w", err))
		}
		if len(files) == 0 {
			continue
		}
		logger.Debug("Sweep files discovered.", "extensions", loader.Extensions(), "count", len(files))

		loaded, err := loader.Load(ctx, files...)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		if err := model.Merge(loaded); err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
	}
	logger.Debug("Configuration loaded and translated into unified model.", "sweeps", len(model.Sweeps))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the loaded sweep model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
