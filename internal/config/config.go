package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/avatars/internal/recolor"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "AVATARS_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (AVATARS_*). A missing file yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// AVATARS_TEMPLATE_DIR -> template_dir, AVATARS_LOG__LEVEL -> log.level.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSources = map[TemplateSource]bool{
	SourceDir:    true,
	SourceSQLite: true,
}

var validFormats = map[LogFormat]bool{
	LogText: true,
	LogJSON: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if !validSources[c.TemplateSource] {
		return fmt.Errorf("invalid template_source %q: must be one of dir, sqlite", c.TemplateSource)
	}
	if c.TemplateSource == SourceDir && c.TemplateDir == "" {
		return fmt.Errorf("template_dir is required when template_source is dir")
	}
	if c.DatabasePath == "" && (c.TemplateSource == SourceSQLite || c.RecordRenders) {
		return fmt.Errorf("database_path is required for sqlite templates and render recording")
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.DarkFactor < 0 || c.DarkFactor >= 1 {
		return fmt.Errorf("dark_factor must be in [0, 1), got %v", c.DarkFactor)
	}

	if c.CacheMaxAgeSeconds < 0 {
		return fmt.Errorf("cache_max_age_seconds must be non-negative")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of text, json", c.Log.Format)
	}

	return nil
}

// Palette parses the configured default colors.
func (c *Config) Palette() (recolor.Palette, error) {
	primary, err := recolor.ParseHex(c.DefaultPrimary)
	if err != nil {
		return recolor.Palette{}, fmt.Errorf("default_primary: %w", err)
	}
	secondary, err := recolor.ParseHex(c.DefaultSecondary)
	if err != nil {
		return recolor.Palette{}, fmt.Errorf("default_secondary: %w", err)
	}
	return recolor.Palette{Primary: primary, Secondary: secondary}, nil
}

// SlogLevel converts the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}

// NewLogger builds the process logger writing to stderr.
func (l LogConfig) NewLogger() *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if l.Format == LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
