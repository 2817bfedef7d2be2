package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/underoot/maksugr.com/internal/app"
	"github.com/underoot/maksugr.com/internal/config"
	"github.com/underoot/maksugr.com/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("feed generation failed", "error", err)
		stop()
		os.Exit(1)
	}
}
