package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/monju/internal/config"
	"github.com/dmitrijs2005/monju/internal/logging"
	"github.com/dmitrijs2005/monju/internal/repositories/entries"
	"github.com/dmitrijs2005/monju/internal/services"
	"github.com/google/uuid"
)

type App struct {
	config       *config.Config
	entryService services.EntryService
	log          logging.Logger
	out          io.Writer
	errOut       io.Writer
	closers      []io.Closer
}

// NewApp opens the configured backing store and builds the service on top
// of it. Call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	log = log.With("run_id", uuid.NewString())

	a := &App{config: c, log: log, out: os.Stdout, errOut: os.Stderr}

	var repo entries.Repository
	switch c.Backend {
	case config.BackendSQLite:
		db, err := entries.OpenSQLite(ctx, c.DataFile)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.DataFile, "error", err)
			return nil, err
		}
		sr := entries.NewSQLiteRepository(db)
		a.closers = append(a.closers, sr)
		repo = sr
	case config.BackendJSON, "":
		repo = entries.NewJSONFileRepository(c.DataFile, log)
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}

	a.entryService = services.NewEntryService(repo, log)
	log.Debug(ctx, "app initialized", "backend", c.Backend, "data", c.DataFile)
	return a, nil
}

// Run executes the command line in args (without the program name) and
// returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.errOut, "Error:", err)
		return 1
	}
	return 0
}

// Close releases the backing store.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
