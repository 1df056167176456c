package app

import (
	"io"
	"log/slog"

	"github.com/dsalwasser/kmpexp/internal/build"
	"github.com/dsalwasser/kmpexp/internal/config"
)

// AppConfig holds all the necessary configuration for an App instance to run.
type AppConfig struct {
	// Dir is the experiment directory: the description is read from it and
	// every generated artifact lands below it.
	Dir       string
	LogFormat string
	LogLevel  string

	// BuildRun overrides how fetch and compile commands are executed. Tests
	// inject a fake here; nil runs the real commands.
	BuildRun build.RunFunc
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *AppConfig
	loader config.Loader

	// dir is config.Dir resolved to an absolute path, set on load.
	dir string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, appConfig *AppConfig, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}
