package config

import (
	"fmt"

	"github.com/dmitrijs2005/monju/internal/common"
	"github.com/go-playground/validator/v10"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds runtime settings for the monju CLI.
type Config struct {
	DataFile  string `json:"data_file" yaml:"data_file" validate:"required"`
	Backend   string `json:"backend" yaml:"backend" validate:"oneof=json sqlite"`
	LogLevel  string `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" yaml:"log_format" validate:"oneof=auto text json"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = common.DefaultDataFile
	c.Backend = BackendJSON
	c.LogLevel = "warn"
	c.LogFormat = "auto"
}

// Validate checks field values and wraps failures in common.ErrorInvalidConfig.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInvalidConfig, err)
	}
	return nil
}

// LoadConfig constructs a Config from args (usually os.Args[1:]): defaults,
// then the config file if one is named, then flags. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
