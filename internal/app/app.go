package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/ctxlog"
	"golang.org/x/term"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx      context.Context
	in       io.Reader
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *config.Settings
}

// NewApp is the constructor for the main application. It builds the App's
// own logger writing to logW and loads settings through loader.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		ctx:    ctx,
		in:     in,
		outW:   outW,
		logger: logger,
		config: appConfig,
	}

	if err := a.LoadSettings(loader); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return a, nil
}

// Settings returns the loaded settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// clearScreen decides whether the shell clears the screen: an explicit
// setting wins, otherwise only a terminal gets cleared.
func (a *App) clearScreen() bool {
	if a.settings.ClearScreen != nil {
		return *a.settings.ClearScreen
	}
	f, ok := a.outW.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
