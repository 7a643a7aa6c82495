package app

import (
	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/ctxlog"
)

// LoadSettings reads the settings file named by the configuration. Without
// one, config.Defaults apply.
func (a *App) LoadSettings(loader config.Loader) error {
	logger := ctxlog.FromContext(a.ctx)

	if a.config.SettingsPath == "" {
		logger.Debug("No settings path configured, using defaults.")
		a.settings = config.Defaults()
		return nil
	}

	logger.Debug("Loading settings...", "settings_path", a.config.SettingsPath)
	settings, err := loader.Load(a.ctx, a.config.SettingsPath)
	if err != nil {
		return err
	}
	a.settings = settings
	logger.Debug("Settings loaded.", "default_filename", settings.DefaultFilename, "default_color", settings.DefaultColor)
	return nil
}
