package scanner

import (
	"context"
	"errors"
)

// ErrNoCursorFound is returned by LoadCursor when no cursor has been saved
// yet for the requested channel. It means "uninitialized", never "zero".
var ErrNoCursorFound = errors.New("no cursor found for channel")

// CursorStorage persists and retrieves the last fully scanned block height
// for each channel.
type CursorStorage interface {
	// SaveCursor records height as the last scanned block for channel.
	//
	// Calling SaveCursor multiple times for the same channel overwrites any
	// previous value. Monotonicity is enforced by the scanner, not by the
	// storage.
	SaveCursor(ctx context.Context, channel string, height uint64) error

	// LoadCursor returns the most recent height saved for channel.
	//
	// If no cursor exists for the channel, LoadCursor must return
	// ErrNoCursorFound.
	LoadCursor(ctx context.Context, channel string) (uint64, error)
}

// loadCursor wraps CursorStorage.LoadCursor, mapping ErrNoCursorFound to a
// nil height.
func (s *service) loadCursor(ctx context.Context, channel string) (*uint64, error) {
	height, err := s.cursorStorage.LoadCursor(ctx, channel)
	if err != nil {
		if errors.Is(err, ErrNoCursorFound) {
			return nil, nil
		}

		return nil, err
	}

	return &height, nil
}
