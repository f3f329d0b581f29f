package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/chainnotify/internal/runner"

	"github.com/redis/go-redis/v9"
)

// deliveryDone is the terminal value of a delivery key.
const deliveryDone = "done"

// deliveryKey formats "chainnotify:delivery:<channel>:<key>".
func deliveryKey(channel, key string) string {
	return fmt.Sprintf("%s:delivery:%s:%s", keyPrefix, channel, key)
}

// ClaimDelivery reserves key with an empty value that expires after ttl.
//
// Returns:
//   - runner.ErrAlreadyDelivered if the key was marked done.
//   - runner.ErrDeliveryInProgress if another pass holds the claim.
func (c *client) ClaimDelivery(ctx context.Context, channel, key string, ttl time.Duration) error {
	k := deliveryKey(channel, key)

	val, err := c.conn.Get(ctx, k).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == deliveryDone {
		return runner.ErrAlreadyDelivered
	}

	ok, err := c.conn.SetNX(ctx, k, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return runner.ErrDeliveryInProgress
	}

	return nil
}

// MarkDelivered replaces the claim with a marker kept for the delivery
// retention. Once it expires the key can be claimed again.
func (c *client) MarkDelivered(ctx context.Context, channel, key string) error {
	return c.conn.Set(ctx, deliveryKey(channel, key), deliveryDone, c.deliveryRetention).Err()
}

var _ runner.DeliveryGuard = new(client)
