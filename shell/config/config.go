package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. LIBRARY_LOGGING_LEVEL for logging.level.
const EnvPrefix = "LIBRARY"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete console configuration.
type Config struct {
	Logging       LoggingConfig       `mapstructure:"logging"`
	Console       ConsoleConfig       `mapstructure:"console"`
	Events        EventsConfig        `mapstructure:"events"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Library       LibraryConfig       `mapstructure:"library"`
}

// LoggingConfig controls the slog output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
	// File receives the log output, stderr when empty
	File string `mapstructure:"file"`
}

// ConsoleConfig controls the interactive menu.
type ConsoleConfig struct {
	Color bool `mapstructure:"color"`
}

// EventsConfig controls the domain event stream.
type EventsConfig struct {
	// Enabled publishes every domain event to the sink
	Enabled bool `mapstructure:"enabled"`
	// Sink is log (JSON lines on the log output) or postgres
	Sink     string         `mapstructure:"sink"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig locates the events table of the postgres sink.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
	// Adapter is pgx, sql, or sqlx
	Adapter string `mapstructure:"adapter"`
	Table   string `mapstructure:"table"`
}

// Event sinks.
const (
	SinkLog      = "log"
	SinkPostgres = "postgres"
)

// ObservabilityConfig controls metrics and tracing.
type ObservabilityConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	// OTLPEndpoint is the host:port of an OTLP gRPC collector; telemetry stays in process when empty
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// LibraryConfig controls the initial library state.
type LibraryConfig struct {
	// Seed registers the sample catalog and patrons at startup
	Seed bool `mapstructure:"seed"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Console: ConsoleConfig{
			Color: true,
		},
		Events: EventsConfig{
			Sink: SinkLog,
			Postgres: PostgresConfig{
				Adapter: "pgx",
				Table:   "library_events",
			},
		},
		Observability: ObservabilityConfig{
			ServiceName: "library-lending",
		},
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("console.color", defaults.Console.Color)
	v.SetDefault("events.enabled", defaults.Events.Enabled)
	v.SetDefault("events.sink", defaults.Events.Sink)
	v.SetDefault("events.postgres.dsn", defaults.Events.Postgres.DSN)
	v.SetDefault("events.postgres.adapter", defaults.Events.Postgres.Adapter)
	v.SetDefault("events.postgres.table", defaults.Events.Postgres.Table)
	v.SetDefault("observability.enabled", defaults.Observability.Enabled)
	v.SetDefault("observability.service_name", defaults.Observability.ServiceName)
	v.SetDefault("observability.otlp_endpoint", defaults.Observability.OTLPEndpoint)
	v.SetDefault("library.seed", defaults.Library.Seed)
}

// NewViper creates a viper instance with defaults, environment binding, and the config file.
// An explicit configFile must exist; without one, config.yaml is optional.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that can not be fixed by a fallback.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalidConfig, c.Logging.Format))
	}

	switch c.Events.Sink {
	case SinkLog:
	case SinkPostgres:
		if c.Events.Enabled && c.Events.Postgres.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: events.postgres.dsn is required for the postgres sink", ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: events.sink must be log or postgres, got %q", ErrInvalidConfig, c.Events.Sink))
	}

	if c.Observability.Enabled && c.Observability.ServiceName == "" {
		errs = append(errs, fmt.Errorf("%w: observability.service_name must not be empty", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadEnvFiles loads .env and .env.local from the working directory, when present.
// Variables already set in the environment win.
func LoadEnvFiles() error {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}

		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	return nil
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "library")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".library"
	}

	return filepath.Join(home, ".config", "library")
}
