package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/avasiliev/fittrack/internal/client/cli"
	"github.com/avasiliev/fittrack/internal/client/config"
	"github.com/avasiliev/fittrack/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
