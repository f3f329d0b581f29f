package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/chainnotify/internal/app"
	"github.com/gabapcia/chainnotify/internal/config"
	"github.com/gabapcia/chainnotify/internal/handlers/cli"
	httphandler "github.com/gabapcia/chainnotify/internal/handlers/http"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/telemetry"
)

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	channels, err := config.LoadChannels(cfg.ChannelsFile)
	if err != nil {
		return fmt.Errorf("load channels: %w", err)
	}

	storage, err := app.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, channels, storage)
	if err != nil {
		_ = storage.Close()
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	return cli.Run(ctx, cli.Dependencies{
		Registry:    a.Registry,
		Subscribers: a.Subscribers,
		Scheduler:   a.Scheduler,
		Server:      httphandler.NewServer(cfg.HTTPAddr, a.Registry, a),
	})
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
