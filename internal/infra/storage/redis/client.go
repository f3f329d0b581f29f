// Package redis implements the chainnotify storage interfaces on top of a
// single Redis connection: scan cursors, wallet rotation indexes, channel
// subscribers, cached balances and delivery claims.
package redis

import (
	"context"
	"time"

	"github.com/gabapcia/chainnotify/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "chainnotify"

// DefaultDeliveryRetention is how long a delivered marker is kept.
const DefaultDeliveryRetention = 30 * 24 * time.Hour

type client struct {
	conn              *redis.Client
	deliveryRetention time.Duration
}

// Option configures the client.
type Option func(*client)

// WithDeliveryRetention sets how long delivered markers are kept. Values
// below one second are ignored.
func WithDeliveryRetention(d time.Duration) Option {
	return func(c *client) {
		if d >= time.Second {
			c.deliveryRetention = d
		}
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// Ping reports whether the server answers.
func (c *client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx).Err()
}

// NewClient connects to Redis, retrying the initial ping so the process can
// start alongside the server.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
	if err := r.Execute(ctx, func() error { return conn.Ping(ctx).Err() }); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:              conn,
		deliveryRetention: DefaultDeliveryRetention,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
