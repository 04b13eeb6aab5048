package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/vmmake/internal/config"
	"github.com/specialistvlad/vmmake/internal/ctxlog"
	"github.com/specialistvlad/vmmake/internal/procexec"
)

// App encapsulates the orchestrator's collaborators and toolchain model.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	toolchain *config.Model
	runner    procexec.Runner
	// dir is the absolute project directory.
	dir string
}

// NewApp builds an App. User-facing notices go to outW and log records to
// logW. The toolchain model comes from loader when a toolchain file exists,
// and from config.Default otherwise.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, runner procexec.Runner) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	dir, err := filepath.Abs(appConfig.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	toolchain, err := loadToolchain(ctx, loader, appConfig.ConfigPath, dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Toolchain ready.", "compiler", toolchain.Compiler, "output", toolchain.Output, "strict", toolchain.Strict)

	return &App{
		outW:      outW,
		logger:    logger,
		toolchain: toolchain,
		runner:    runner,
		dir:       dir,
	}, nil
}

// loadToolchain reads the explicit toolchain file, or the default one in dir
// if it exists.
func loadToolchain(ctx context.Context, loader config.Loader, explicit, dir string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	path := explicit
	if path == "" {
		path = filepath.Join(dir, config.DefaultFile)
	}

	model, err := loader.Load(ctx, path)
	switch {
	case err == nil:
		logger.Debug("Toolchain file loaded.", "path", path)
		return model, nil
	case explicit == "" && errors.Is(err, fs.ErrNotExist):
		logger.Debug("No toolchain file, using defaults.", "path", path)
		return config.Default(), nil
	default:
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
}

// Toolchain returns the model the App builds with. This is primarily for testing.
func (a *App) Toolchain() *config.Model {
	return a.toolchain
}

// artifactPath is the absolute path of the build output.
func (a *App) artifactPath() string {
	if filepath.IsAbs(a.toolchain.Output) {
		return a.toolchain.Output
	}
	return filepath.Join(a.dir, a.toolchain.Output)
}
