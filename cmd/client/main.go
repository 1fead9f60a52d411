package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"storehub-client/internal/buildinfo"
	"storehub-client/internal/client/cli"
	"storehub-client/internal/client/config"
	"storehub-client/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
