package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.TemplateSource != SourceDir {
		t.Errorf("expected default template_source %q, got %q", SourceDir, cfg.TemplateSource)
	}
	if cfg.DefaultPrimary != "#D4A574" || cfg.DefaultSecondary != "#FFFDD0" {
		t.Errorf("unexpected default palette %q/%q", cfg.DefaultPrimary, cfg.DefaultSecondary)
	}
	if cfg.DarkFactor != 0.2 {
		t.Errorf("expected dark_factor 0.2, got %v", cfg.DarkFactor)
	}
	if cfg.CacheMaxAgeSeconds != 3600 {
		t.Errorf("expected cache_max_age_seconds 3600, got %d", cfg.CacheMaxAgeSeconds)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.avatars.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.TemplateSource = SourceSQLite
	original.DatabasePath = "var/avatars.db"
	original.DefaultPrimary = "#112233"
	original.DarkFactor = 0.35
	original.Log.Format = LogJSON

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.TemplateSource != original.TemplateSource {
		t.Errorf("template_source: got %q, want %q", loaded.TemplateSource, original.TemplateSource)
	}
	if loaded.DatabasePath != original.DatabasePath {
		t.Errorf("database_path: got %q, want %q", loaded.DatabasePath, original.DatabasePath)
	}
	if loaded.DefaultPrimary != original.DefaultPrimary {
		t.Errorf("default_primary: got %q, want %q", loaded.DefaultPrimary, original.DefaultPrimary)
	}
	if loaded.DarkFactor != original.DarkFactor {
		t.Errorf("dark_factor: got %v, want %v", loaded.DarkFactor, original.DarkFactor)
	}
	if loaded.Log.Format != LogJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogJSON)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.TemplateDir != "assets/avatars" {
		t.Errorf("expected default template_dir, got %q", cfg.TemplateDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("AVATARS_TEMPLATE_DIR", "/srv/avatars")
	t.Setenv("AVATARS_PORT", "9999")
	t.Setenv("AVATARS_RECORD_RENDERS", "false")
	t.Setenv("AVATARS_LOG__LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TemplateDir != "/srv/avatars" {
		t.Errorf("env override failed: got %q", loaded.TemplateDir)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: got port %d", loaded.Port)
	}
	if loaded.RecordRenders {
		t.Error("env override failed: record_renders still true")
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("env override failed: got log.level %q", loaded.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"sqlite source", func(c *Config) { c.TemplateSource = SourceSQLite }, false},
		{"unknown source", func(c *Config) { c.TemplateSource = "s3" }, true},
		{"dir source without dir", func(c *Config) { c.TemplateDir = "" }, true},
		{"sqlite without database", func(c *Config) { c.TemplateSource = SourceSQLite; c.DatabasePath = "" }, true},
		{"no database, no recording", func(c *Config) { c.DatabasePath = ""; c.RecordRenders = false }, false},
		{"bad primary", func(c *Config) { c.DefaultPrimary = "tan" }, true},
		{"bad secondary", func(c *Config) { c.DefaultSecondary = "#12345" }, true},
		{"dark factor of one", func(c *Config) { c.DarkFactor = 1 }, true},
		{"negative dark factor", func(c *Config) { c.DarkFactor = -0.1 }, true},
		{"negative cache age", func(c *Config) { c.CacheMaxAgeSeconds = -1 }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultConfig().Palette()
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if p.Primary.Hex() != "#d4a574" || p.Secondary.Hex() != "#fffdd0" {
		t.Errorf("unexpected palette %s/%s", p.Primary.Hex(), p.Secondary.Hex())
	}
}

func TestSlogLevel(t *testing.T) {
	level, err := LogConfig{Level: "warn"}.SlogLevel()
	if err != nil {
		t.Fatalf("SlogLevel: %v", err)
	}
	if level != slog.LevelWarn {
		t.Errorf("expected warn, got %v", level)
	}
}

func TestValidators(t *testing.T) {
	if err := validatePort("8080"); err != nil {
		t.Errorf("validatePort(8080): %v", err)
	}
	if err := validatePort("http"); err == nil {
		t.Error("expected error for non-numeric port")
	}
	if err := validateColor("#abcdef"); err != nil {
		t.Errorf("validateColor: %v", err)
	}
	if err := validateColor("blue"); err == nil {
		t.Error("expected error for named color")
	}
}
