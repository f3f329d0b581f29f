// Package scannertest provides an in-memory CursorStorage for tests.
package scannertest

import (
	"context"
	"sync"

	"github.com/gabapcia/chainnotify/internal/scanner"
)

// Cursors is a concurrency safe in-memory scanner.CursorStorage.
type Cursors struct {
	mu      sync.Mutex
	heights map[string]uint64
}

var _ scanner.CursorStorage = (*Cursors)(nil)

// NewCursors returns storage seeded with the given channel heights.
func NewCursors(seed map[string]uint64) *Cursors {
	c := &Cursors{heights: make(map[string]uint64, len(seed))}
	for k, v := range seed {
		c.heights[k] = v
	}

	return c
}

func (c *Cursors) SaveCursor(_ context.Context, channel string, height uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.heights[channel] = height
	return nil
}

func (c *Cursors) LoadCursor(_ context.Context, channel string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.heights[channel]
	if !ok {
		return 0, scanner.ErrNoCursorFound
	}

	return h, nil
}
