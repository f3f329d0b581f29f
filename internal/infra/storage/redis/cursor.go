package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/pkg/types"
	"github.com/gabapcia/chainnotify/internal/scanner"

	"github.com/redis/go-redis/v9"
)

// cursorKey formats "chainnotify:cursor:<channel>".
func cursorKey(channel string) string {
	return fmt.Sprintf("%s:cursor:%s", keyPrefix, channel)
}

// SaveCursor stores height hex encoded, with no expiration.
func (c *client) SaveCursor(ctx context.Context, channel string, height uint64) error {
	return c.conn.Set(ctx, cursorKey(channel), string(types.HexFromUint64(height)), 0).Err()
}

// LoadCursor returns scanner.ErrNoCursorFound when the channel never
// committed a scan.
func (c *client) LoadCursor(ctx context.Context, channel string) (uint64, error) {
	val, err := c.conn.Get(ctx, cursorKey(channel)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = scanner.ErrNoCursorFound
		}

		return 0, err
	}

	h, err := types.HexFromString(val)
	if err != nil {
		return 0, fmt.Errorf("cursor of %s: %w", channel, err)
	}

	return h.Uint64(), nil
}

var _ scanner.CursorStorage = new(client)
