package app

import (
	"context"

	"github.com/specialistvlad/blockart/internal/ctxlog"
	"github.com/specialistvlad/blockart/internal/shell"
)

// Run starts the interactive shell and blocks until it ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sh := shell.New(a.in, a.outW, shell.Options{
		Settings:    a.settings,
		ClearScreen: a.clearScreen(),
		NoColor:     a.config.NoColor,
		Logger:      a.logger,
	})
	if err := sh.Run(ctx); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
