package redis

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/chainnotify/internal/subscriber"
)

// subscribersKey formats "chainnotify:subscribers:<channel>", a set of
// lowercase addresses.
func subscribersKey(channel string) string {
	return fmt.Sprintf("%s:subscribers:%s", keyPrefix, channel)
}

func (c *client) AddSubscription(ctx context.Context, id subscriber.Subscription) error {
	return c.conn.SAdd(ctx, subscribersKey(id.Channel), id.Address).Err()
}

func (c *client) RemoveSubscription(ctx context.Context, id subscriber.Subscription) error {
	return c.conn.SRem(ctx, subscribersKey(id.Channel), id.Address).Err()
}

// ListSubscriptions returns the members sorted, so passes see a stable order.
func (c *client) ListSubscriptions(ctx context.Context, channel string) ([]string, error) {
	members, err := c.conn.SMembers(ctx, subscribersKey(channel)).Result()
	if err != nil {
		return nil, err
	}

	slices.Sort(members)
	return members, nil
}

var _ subscriber.Storage = new(client)
