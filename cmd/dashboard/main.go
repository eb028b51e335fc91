package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdash/internal/buildinfo"
	"github.com/dmitrijs2005/gophdash/internal/cli"
	"github.com/dmitrijs2005/gophdash/internal/config"
	"github.com/dmitrijs2005/gophdash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "dashboard stopped", "error", err)
		os.Exit(1)
	}

}
