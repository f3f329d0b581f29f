// Package app wires configuration, storage and infrastructure clients into
// the channel runners served by the CLI and the HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/chainnotify/internal/channels/ens"
	"github.com/gabapcia/chainnotify/internal/config"
	"github.com/gabapcia/chainnotify/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainnotify/internal/infra/contentstore/ipfs"
	"github.com/gabapcia/chainnotify/internal/infra/feeds/coinmarketcap"
	"github.com/gabapcia/chainnotify/internal/infra/graphql"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainnotify/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainnotify/internal/registry"
	"github.com/gabapcia/chainnotify/internal/runner"
	"github.com/gabapcia/chainnotify/internal/scanner"
	"github.com/gabapcia/chainnotify/internal/scheduler"
	"github.com/gabapcia/chainnotify/internal/subscriber"
	"github.com/gabapcia/chainnotify/internal/walletpool"
)

// App holds the long lived services of the process.
type App struct {
	Registry    registry.Registry
	Scheduler   scheduler.Service
	Subscribers subscriber.Service

	storage Storage
}

// Ping reports whether the storage backend is reachable.
func (a *App) Ping(ctx context.Context) error {
	return a.storage.Ping(ctx)
}

// Close stops the scheduler and releases the storage connection.
func (a *App) Close() error {
	a.Scheduler.Close()
	return a.storage.Close()
}

// New builds every enabled channel in defs on top of storage.
func New(cfg config.Config, defs []config.Channel, storage Storage) (*App, error) {
	ledgers := ethereum.NewResolver(cfg.RPC.Endpoints, jsonrpc.WithRateLimit(cfg.RPC.RateLimit, cfg.RPC.Burst))

	publisher, err := ledgers.Ledger(cfg.Delivery.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: delivery network: %w", runner.ErrConfig, err)
	}

	dispatcher := notify.New(
		cfg.Delivery.CoreAddress,
		ipfs.New(cfg.Delivery.IPFS),
		publisher,
		notify.WithStorageType(cfg.Delivery.StorageType),
		notify.WithUploadRetry(retry.New(retry.WithAttempts(3), retry.WithDelay(time.Second))),
	)

	subscribers := subscriber.New(storage)

	deps := runner.Dependencies{
		Ledgers:     ledgers,
		Wallets:     walletpool.New(storage),
		Subscribers: subscribers,
		Scanner:     scanner.New(storage),
		Dispatcher:  dispatcher,
	}

	sources := Sources{
		Balances: storage,
		Quotes:   coinmarketcap.New(cfg.Feeds.CoinMarketCapEndpoint, cfg.Feeds.CoinMarketCapKey),
		Domains:  ens.NewSubgraph(graphql.New(cfg.Feeds.ENSSubgraph)),
	}

	opts := []runner.Option{
		runner.WithPassTimeout(cfg.PassTimeout),
		runner.WithConcurrency(cfg.Concurrency),
	}
	if cfg.Delivery.Guard {
		opts = append(opts, runner.WithDeliveryGuard(storage, cfg.Delivery.GuardTTL))
	}

	var (
		runners []runner.Runner
		jobs    []scheduler.Job
		errs    []error
	)
	for _, def := range defs {
		if !def.IsEnabled() {
			logger.Info(context.Background(), "channel disabled", "channel", def.ID)
			continue
		}

		ch, err := BuildChannel(def, sources)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		rn := runner.New(ch, runner.Settings{Network: def.Network, Wallets: def.Wallets}, deps, opts...)
		runners = append(runners, rn)
		jobs = append(jobs, scheduler.Job{Runner: rn, Interval: def.Interval})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	reg, err := registry.New(runners...)
	if err != nil {
		return nil, err
	}

	sched, err := scheduler.New(jobs)
	if err != nil {
		return nil, err
	}

	return &App{
		Registry:    reg,
		Scheduler:   sched,
		Subscribers: subscribers,
		storage:     storage,
	}, nil
}
