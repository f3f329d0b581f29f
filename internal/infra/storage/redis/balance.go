package redis

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/chainnotify/internal/channels/wallettracker"

	"github.com/redis/go-redis/v9"
)

// balanceKey formats "chainnotify:balance:<channel>:<address>", a hash of
// decimal amounts keyed by asset symbol.
func balanceKey(channel, address string) string {
	return fmt.Sprintf("%s:balance:%s:%s", keyPrefix, channel, strings.ToLower(address))
}

func (c *client) LoadBalance(ctx context.Context, channel, address, asset string) (*big.Int, error) {
	val, err := c.conn.HGet(ctx, balanceKey(channel, address), asset).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = wallettracker.ErrNoBalance
		}

		return nil, err
	}

	amount, ok := new(big.Int).SetString(val, 10)
	if !ok {
		return nil, fmt.Errorf("malformed cached balance %q", val)
	}

	return amount, nil
}

func (c *client) SaveBalance(ctx context.Context, channel, address, asset string, amount *big.Int) error {
	return c.conn.HSet(ctx, balanceKey(channel, address), asset, amount.String()).Err()
}

var _ wallettracker.BalanceStore = new(client)
