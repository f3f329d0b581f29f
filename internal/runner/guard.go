package runner

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyDelivered is returned by a DeliveryGuard when the key was
	// already delivered by a previous pass.
	ErrAlreadyDelivered = errors.New("notification already delivered")

	// ErrDeliveryInProgress is returned by a DeliveryGuard when another pass
	// holds the claim on the key and it has not expired yet.
	ErrDeliveryInProgress = errors.New("notification delivery in progress")
)

// DeliveryGuard makes deliveries of keyed subjects idempotent across passes
// and process restarts.
//
// A claim is taken before dispatch and turned into a durable "delivered"
// marker afterwards. Claims expire after the given TTL so a crashed pass does
// not block the key forever.
type DeliveryGuard interface {
	// ClaimDelivery takes the claim on key for channel.
	//
	// Returns ErrAlreadyDelivered or ErrDeliveryInProgress when the subject
	// must be skipped, or any storage error.
	ClaimDelivery(ctx context.Context, channel, key string, ttl time.Duration) error

	// MarkDelivered finalizes the claim on key.
	MarkDelivered(ctx context.Context, channel, key string) error
}
