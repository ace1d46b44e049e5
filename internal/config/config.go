package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultProduct     = "jobforge"
	DefaultDBFile      = "jobforge.db"
	DefaultBusyTimeout = 5 * time.Second
)

// Config holds runtime settings for a product's record store.
//
// Fields:
//   - Product: product name used to resolve the storage root.
//   - DataHome: directory under which product dot-directories live.
//   - DBFile: database file name inside the storage root.
//   - BusyTimeout: how long a call waits on another writer's lock.
type Config struct {
	Product     string        `yaml:"product" env:"WICKIT_PRODUCT" env-default:"jobforge"`
	DataHome    string        `yaml:"data_home" env:"WICKIT_DATA_HOME"`
	DBFile      string        `yaml:"db_file" env:"WICKIT_DB_FILE" env-default:"jobforge.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"WICKIT_BUSY_TIMEOUT" env-default:"5s"`
	Log         LogConfig     `yaml:"log"`
}

// LogConfig selects the slog handler and minimum level.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.Product = DefaultProduct
	c.DataHome = ""
	c.DBFile = DefaultDBFile
	c.BusyTimeout = DefaultBusyTimeout
	c.Log = LogConfig{Level: "info", Format: "text"}
}

// Default returns a Config with only the built-in defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}

// Load reads configuration from an optional YAML file and the environment.
// An empty path skips the file. A path that does not exist is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration can address a database file.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Product) == "" {
		errs = append(errs, errors.New("product is required"))
	}
	if c.DBFile == "" {
		errs = append(errs, errors.New("db_file is required"))
	} else if strings.ContainsAny(c.DBFile, `/\`) {
		errs = append(errs, fmt.Errorf("db_file %q must be a bare file name", c.DBFile))
	}
	if c.BusyTimeout < 0 {
		errs = append(errs, fmt.Errorf("busy_timeout must not be negative, got %s", c.BusyTimeout))
	}

	return errors.Join(errs...)
}
