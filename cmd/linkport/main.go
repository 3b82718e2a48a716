package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jpp0ca/linkport/internal/bootstrap"
	"github.com/jpp0ca/linkport/internal/config"
	"github.com/jpp0ca/linkport/internal/logging"
)

func main() {
	cfg, _ := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	rt := bootstrap.New(context.Background(), cfg, logger)
	runner := NewRunner(rt.Service, os.Stdout, logger)

	app := &cli.Command{
		Name:     "linkport",
		Usage:    "Convert playlists between streaming platforms",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	err := app.Run(context.Background(), os.Args)
	rt.Close()
	if err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
