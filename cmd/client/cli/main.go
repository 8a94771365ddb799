package main

import (
	"context"
	"log"
	"os"

	"github.com/applyline/applyline/internal/buildinfo"
	"github.com/applyline/applyline/internal/client/cli"
	"github.com/applyline/applyline/internal/client/config"
	"github.com/applyline/applyline/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
