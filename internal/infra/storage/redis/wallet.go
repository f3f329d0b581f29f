package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/walletpool"

	"github.com/redis/go-redis/v9"
)

// walletIndexKey formats "chainnotify:wallet:index:<channel>".
func walletIndexKey(channel string) string {
	return fmt.Sprintf("%s:wallet:index:%s", keyPrefix, channel)
}

// LoadWalletIndex returns walletpool.ErrNoWalletIndex for channels that never
// rotated.
func (c *client) LoadWalletIndex(ctx context.Context, channel string) (int, error) {
	idx, err := c.conn.Get(ctx, walletIndexKey(channel)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = walletpool.ErrNoWalletIndex
		}

		return 0, err
	}

	return idx, nil
}

func (c *client) SaveWalletIndex(ctx context.Context, channel string, index int) error {
	return c.conn.Set(ctx, walletIndexKey(channel), index, 0).Err()
}

var _ walletpool.IndexStorage = new(client)
