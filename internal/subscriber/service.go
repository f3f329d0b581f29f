// Package subscriber manages which addresses receive a channel's
// notifications and lists them for each pass.
package subscriber

import "context"

// Directory lists the current subscribers of a channel. Runners call it
// fresh on every pass; the result is never cached by the core.
type Directory interface {
	ListSubscribers(ctx context.Context, channel string) ([]string, error)
}

// Service registers and unregisters subscribers and exposes the Directory.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured Storage.
type Service interface {
	Directory

	// Subscribe adds address to the subscribers of channel.
	//
	// Returns an error if validation fails or the registration cannot be
	// completed. Subscribing twice is not an error.
	Subscribe(ctx context.Context, channel, address string) error

	// Unsubscribe removes address from the subscribers of channel.
	//
	// Returns an error if validation fails or the removal cannot be
	// completed.
	Unsubscribe(ctx context.Context, channel, address string) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage Storage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a subscriber service persisting to s.
func New(s Storage) *service {
	return &service{
		storage: s,
	}
}
