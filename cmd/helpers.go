package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/avatars/internal/avatars"
	"github.com/ziadkadry99/avatars/internal/config"
	"github.com/ziadkadry99/avatars/internal/db"
	"github.com/ziadkadry99/avatars/internal/templates"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `avatars init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// buildService wires the template store, render log and palette defaults
// from cfg. The returned cleanup closes anything that was opened.
func buildService(cfg *config.Config, logger *slog.Logger, recordRenders bool) (*avatars.Service, func(), error) {
	cleanup := func() {}

	palette, err := cfg.Palette()
	if err != nil {
		return nil, cleanup, err
	}
	opts := []avatars.ServiceOption{
		avatars.WithDefaults(palette),
		avatars.WithDarkFactor(cfg.DarkFactor),
		avatars.WithLogger(logger),
	}

	var database *db.DB
	if cfg.TemplateSource == config.SourceSQLite || (recordRenders && cfg.DatabasePath != "") {
		database, err = db.Open(cfg.DatabasePath)
		if err != nil {
			return nil, cleanup, fmt.Errorf("opening database: %w", err)
		}
		cleanup = func() { database.Close() }
	}
	if recordRenders && database != nil {
		opts = append(opts, avatars.WithRenderLog(avatars.NewRenderLog(database)))
	}

	var store templates.Store
	switch cfg.TemplateSource {
	case config.SourceSQLite:
		store = templates.NewDBStore(database)
	default:
		store = templates.NewDirStore(cfg.TemplateDir)
	}

	return avatars.NewService(store, opts...), cleanup, nil
}

// templateLocation describes where templates are read from for startup output.
func templateLocation(cfg *config.Config) string {
	if cfg.TemplateSource == config.SourceSQLite {
		return "sqlite " + cfg.DatabasePath
	}
	return "dir " + cfg.TemplateDir
}
