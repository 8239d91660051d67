package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/monju/internal/flagx"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used only for decoding. Pointer fields tell "absent"
// apart from "set to empty", so a partial file keeps the defaults.
type fileConfig struct {
	DataFile  *string `json:"data_file" yaml:"data_file"`
	Backend   *string `json:"backend" yaml:"backend"`
	LogLevel  *string `json:"log_level" yaml:"log_level"`
	LogFormat *string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/--config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.DataFile != nil {
		cfg.DataFile = *fc.DataFile
	}
	if fc.Backend != nil {
		cfg.Backend = *fc.Backend
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}
