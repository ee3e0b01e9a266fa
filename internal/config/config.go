package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/natevvv/grid-path-search/pkg/routing"
)

// Environment variables overriding values of the config file.
const (
	EnvGridFile       = "GRIDPATH_GRID_FILE"
	EnvSearchMode     = "GRIDPATH_SEARCH_MODE"
	EnvServerAddr     = "GRIDPATH_SERVER_ADDR"
	EnvLogLevel       = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat      = "GRIDPATH_LOG_FORMAT"
	EnvMetricsEnabled = "GRIDPATH_METRICS_ENABLED"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// search_mode accepts every spelling routing.ParseMode does
	if err := v.RegisterValidation("search_mode", func(fl validator.FieldLevel) bool {
		_, err := routing.ParseMode(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Search  SearchConfig  `yaml:"search"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type GridConfig struct {
	// grid served by the http api
	File string `yaml:"file"`
}

type SearchConfig struct {
	Mode       string `yaml:"mode" validate:"search_mode"`
	DebugLevel int    `yaml:"debug_level" validate:"gte=0,lte=2"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func Default() Config {
	return Config{
		Search: SearchConfig{Mode: "A*"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads the YAML file at path over the defaults, applies the environment overrides
// and validates the result. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read the config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	mode, _ := routing.ParseMode(cfg.Search.Mode)
	cfg.Search.Mode = mode.String()
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGridFile); ok {
		c.Grid.File = v
	}
	if v, ok := lookup(EnvSearchMode); ok {
		c.Search.Mode = v
	}
	if v, ok := lookup(EnvServerAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvMetricsEnabled); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMetricsEnabled, err)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
