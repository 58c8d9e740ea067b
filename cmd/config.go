package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read into Config.
const EnvPrefix = "DISPATCH"

type Config struct {
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat          string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	DefaultStrategy    string `envconfig:"DEFAULT_STRATEGY" default:"lowest_cost" validate:"required"`
	SeedFile           string `envconfig:"SEED_FILE" default:"seed.yaml" validate:"required"`
	PlacementSchedule  string `envconfig:"PLACEMENT_SCHEDULE" default:"* * * * * *" validate:"required"`
	CompletionSchedule string `envconfig:"COMPLETION_SCHEDULE" default:"*/2 * * * * *" validate:"required"`
}

// LoadConfig reads Config from the environment. Variables found in envFile are
// loaded first without overriding ones already set; a missing envFile is fine.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the field constraints.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// NewLogger builds the root logger described by the config.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
