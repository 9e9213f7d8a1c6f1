package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urbanobservatory/uoapi-go/internal/app"
	"github.com/urbanobservatory/uoapi-go/internal/config"
	"github.com/urbanobservatory/uoapi-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "uocheck failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := app.NewClient(cfg, log)
	if err != nil {
		return err
	}
	log.Infow("verification starting", "base_url", client.BaseURL())

	checker, err := app.NewChecker(client, log)
	if err != nil {
		return err
	}
	if err := checker.Run(ctx); err != nil {
		return fmt.Errorf("verification: %w", err)
	}

	log.Infow("all checks passed")
	return nil
}
