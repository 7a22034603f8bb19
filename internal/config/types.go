package config

// TemplateSource selects where avatar templates are read from.
type TemplateSource string

const (
	SourceDir    TemplateSource = "dir"
	SourceSQLite TemplateSource = "sqlite"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config is the top-level avatars configuration, corresponding to .avatars.yml.
type Config struct {
	Port               int            `yaml:"port" koanf:"port"`
	AllowAllOrigins    bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	TemplateSource     TemplateSource `yaml:"template_source" koanf:"template_source"`
	TemplateDir        string         `yaml:"template_dir" koanf:"template_dir"`
	DatabasePath       string         `yaml:"database_path" koanf:"database_path"`
	DefaultPrimary     string         `yaml:"default_primary" koanf:"default_primary"`
	DefaultSecondary   string         `yaml:"default_secondary" koanf:"default_secondary"`
	DarkFactor         float64        `yaml:"dark_factor" koanf:"dark_factor"`
	CacheMaxAgeSeconds int            `yaml:"cache_max_age_seconds" koanf:"cache_max_age_seconds"`
	RecordRenders      bool           `yaml:"record_renders" koanf:"record_renders"`
	Log                LogConfig      `yaml:"log" koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
