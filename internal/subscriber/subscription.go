package subscriber

import (
	"context"
	"strings"

	"github.com/gabapcia/chainnotify/internal/pkg/types"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
)

// Subscription uniquely identifies a subscriber of a channel.
//
// Both fields are required and validated upon creation. Addresses are
// stored lowercase so the same account is never listed twice.
type Subscription struct {
	Channel string `validate:"required"`
	Address string `validate:"required,eth_addr"`
}

// Storage defines the persistence interface for channel subscriptions.
type Storage interface {
	// AddSubscription stores id. It must be idempotent.
	AddSubscription(ctx context.Context, id Subscription) error

	// RemoveSubscription deletes id. Removing an unknown id is not an error.
	RemoveSubscription(ctx context.Context, id Subscription) error

	// ListSubscriptions returns every address subscribed to channel.
	ListSubscriptions(ctx context.Context, channel string) ([]string, error)
}

// buildSubscription constructs and validates a Subscription.
func buildSubscription(channel, address string) (Subscription, error) {
	id := Subscription{
		Channel: channel,
		Address: strings.ToLower(strings.TrimSpace(address)),
	}

	return id, validator.Validate(id)
}

// Subscribe validates the input and persists it using Storage.
func (s *service) Subscribe(ctx context.Context, channel, address string) error {
	id, err := buildSubscription(channel, address)
	if err != nil {
		return err
	}

	return s.storage.AddSubscription(ctx, id)
}

// Unsubscribe validates the input and removes it using Storage.
func (s *service) Unsubscribe(ctx context.Context, channel, address string) error {
	id, err := buildSubscription(channel, address)
	if err != nil {
		return err
	}

	return s.storage.RemoveSubscription(ctx, id)
}

// ListSubscribers returns the deduplicated subscribers of channel.
func (s *service) ListSubscribers(ctx context.Context, channel string) ([]string, error) {
	addresses, err := s.storage.ListSubscriptions(ctx, channel)
	if err != nil {
		return nil, err
	}

	seen := types.NewSet[string]()
	subscribers := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		addr = strings.ToLower(addr)
		if seen.Has(addr) {
			continue
		}

		seen.Add(addr)
		subscribers = append(subscribers, addr)
	}

	return subscribers, nil
}
