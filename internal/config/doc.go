// Package config loads runtime configuration for the monju CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. Files ending in
//     .yaml or .yml are decoded as YAML, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d, --data string        path of the backing file
//	-b, --backend string     json or sqlite
//	-l, --log-level string   debug, info, warn or error
//	    --log-format string  auto, text or json
//
// # File schema
//
//	{
//	  "data_file": "data/knowledge.json",
//	  "backend": "json",
//	  "log_level": "warn",
//	  "log_format": "auto"
//	}
//
// Note: This package does not read environment variables; use the config
// file or flags.
package config
