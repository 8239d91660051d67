package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/monju/internal/cli"
	"github.com/dmitrijs2005/monju/internal/config"
	"github.com/dmitrijs2005/monju/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer app.Close()

	return app.Run(ctx, args)
}
