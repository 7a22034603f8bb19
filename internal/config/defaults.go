package config

import "github.com/ziadkadry99/avatars/internal/recolor"

// DefaultConfigPath is where the CLI looks for configuration by default.
const DefaultConfigPath = ".avatars.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:               8080,
		AllowAllOrigins:    false,
		TemplateSource:     SourceDir,
		TemplateDir:        "assets/avatars",
		DatabasePath:       "data/avatars.db",
		DefaultPrimary:     "#D4A574",
		DefaultSecondary:   "#FFFDD0",
		DarkFactor:         recolor.DefaultDarkFactor,
		CacheMaxAgeSeconds: 3600,
		RecordRenders:      true,
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
	}
}
