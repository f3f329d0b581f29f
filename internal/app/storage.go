package app

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/channels/wallettracker"
	"github.com/gabapcia/chainnotify/internal/config"
	"github.com/gabapcia/chainnotify/internal/infra/storage/redis"
	"github.com/gabapcia/chainnotify/internal/infra/storage/sqlite"
	"github.com/gabapcia/chainnotify/internal/runner"
	"github.com/gabapcia/chainnotify/internal/scanner"
	"github.com/gabapcia/chainnotify/internal/subscriber"
	"github.com/gabapcia/chainnotify/internal/walletpool"
)

// Storage is every piece of state the process keeps between passes.
type Storage interface {
	scanner.CursorStorage
	walletpool.IndexStorage
	subscriber.Storage
	wallettracker.BalanceStore
	runner.DeliveryGuard

	Ping(ctx context.Context) error
	Close() error
}

// OpenStorage connects to the configured storage driver.
func OpenStorage(ctx context.Context, cfg config.Storage) (Storage, error) {
	switch cfg.Driver {
	case "redis":
		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithDeliveryRetention(cfg.DeliveryRetention),
		)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return c, nil
	case "sqlite":
		s, err := sqlite.Open(ctx, cfg.SQLite, sqlite.WithDeliveryRetention(cfg.DeliveryRetention))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
