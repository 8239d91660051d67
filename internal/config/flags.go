package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/monju/internal/flagx"
)

// knownFlags are the spellings parseFlags understands. Anything else on the
// command line belongs to the subcommands and is ignored here.
var knownFlags = []string{
	"-d", "--data",
	"-b", "--backend",
	"-l", "--log-level",
	"--log-format",
}

// parseFlags overlays cfg with the global flags found in args.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("monju", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "path of the backing file")
	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "path of the backing file (short)")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (short)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (short)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
