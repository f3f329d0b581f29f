// Package scanner performs incremental event-log scans over a block range
// derived from a persisted per-channel cursor, and commits the cursor once
// the caller has finished handling the results.
//
// A scan never starts from block 0: without a stored cursor or an explicit
// range it begins at the current chain height.
package scanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/metrics"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
)

// ErrScan wraps every failure that prevents a scan from producing a result.
var ErrScan = errors.New("event scan failed")

// LogSource is the subset of the ledger contract needed to scan logs.
type LogSource interface {
	CurrentHeight(ctx context.Context) (uint64, error)
	QueryLogs(ctx context.Context, filter ledger.Filter, from, to uint64) ([]ledger.Event, error)
}

// Window carries optional explicit scan bounds (from a simulate override).
type Window struct {
	From *uint64
	To   *uint64
}

// Result is the outcome of one scan.
type Result struct {
	Events    []ledger.Event
	FromBlock uint64
	ToBlock   uint64

	// Previous is the cursor loaded before the scan, nil on a first run.
	Previous *uint64

	// Empty is set when there was no new block to scan; Events is empty and
	// the cursor must not move.
	Empty bool

	Err error
}

// Success reports whether the scan completed.
func (r Result) Success() bool {
	return r.Err == nil
}

// Service scans logs and commits cursors.
type Service interface {
	// Scan resolves the block range for channel and queries filter over it.
	// Failures are reported through Result.Err, wrapping ErrScan; the cursor
	// is never touched by Scan.
	Scan(ctx context.Context, source LogSource, channel string, filter ledger.Filter, window Window) Result

	// Commit persists result.ToBlock as the channel cursor if the scan
	// succeeded and the new value is ahead of the stored one.
	Commit(ctx context.Context, channel string, result Result) error
}

type config struct {
	maxRange uint64
}

// Option configures the scanner.
type Option func(*config)

// WithMaxRange caps the number of blocks queried in one scan. The cursor
// then advances to the end of the capped range and the next pass continues
// from there. Zero means unlimited.
func WithMaxRange(n uint64) Option {
	return func(c *config) {
		c.maxRange = n
	}
}

type service struct {
	cfg           config
	cursorStorage CursorStorage
}

var _ Service = (*service)(nil)

// resolveRange computes the inclusive [from, to] range. ok is false when
// there is nothing new to scan; capped is set when maxRange cut it short.
func (s *service) resolveRange(ctx context.Context, source LogSource, previous *uint64, window Window) (from, to uint64, ok, capped bool, err error) {
	if window.To != nil {
		to = *window.To
	} else {
		if to, err = source.CurrentHeight(ctx); err != nil {
			return 0, 0, false, false, err
		}
	}

	switch {
	case window.From != nil:
		from = *window.From
	case previous != nil:
		from = *previous + 1
	default:
		from = to
	}

	if from > to {
		return from, to, false, false, nil
	}

	if s.cfg.maxRange > 0 && to-from+1 > s.cfg.maxRange {
		return from, from + s.cfg.maxRange - 1, true, true, nil
	}

	return from, to, true, false, nil
}

// catchUp extends a live scan to the height reached while the query ran.
// A failed refresh or follow-up query keeps the original bound and the next
// pass resumes from there.
func (s *service) catchUp(ctx context.Context, source LogSource, filter ledger.Filter, to uint64, events []ledger.Event) (uint64, []ledger.Event) {
	height, err := source.CurrentHeight(ctx)
	if err != nil {
		logger.Debug(ctx, "height refresh failed", "to_block", to, "error", err)
		return to, events
	}

	if height <= to {
		return to, events
	}

	if s.cfg.maxRange > 0 && height-to > s.cfg.maxRange {
		height = to + s.cfg.maxRange
	}

	more, err := source.QueryLogs(ctx, filter, to+1, height)
	if err != nil {
		logger.Warn(ctx, "catch-up query failed", "from_block", to+1, "to_block", height, "error", err)
		return to, events
	}

	return height, append(events, more...)
}

func (s *service) Scan(ctx context.Context, source LogSource, channel string, filter ledger.Filter, window Window) Result {
	previous, err := s.loadCursor(ctx, channel)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: load cursor: %w", ErrScan, err)}
	}

	from, to, ok, capped, err := s.resolveRange(ctx, source, previous, window)
	if err != nil {
		return Result{Previous: previous, Err: fmt.Errorf("%w: resolve height: %w", ErrScan, err)}
	}

	if !ok {
		logger.Debug(ctx, "no new blocks to scan", "from_block", from, "to_block", to)
		return Result{FromBlock: from, ToBlock: to, Previous: previous, Empty: true}
	}

	events, err := source.QueryLogs(ctx, filter, from, to)
	if err != nil {
		return Result{FromBlock: from, ToBlock: to, Previous: previous, Err: fmt.Errorf("%w: query logs [%d, %d]: %w", ErrScan, from, to, err)}
	}

	if window.To == nil && !capped {
		to, events = s.catchUp(ctx, source, filter, to, events)
	}

	metrics.ScannedBlocks.WithLabelValues(channel).Add(float64(to - from + 1))
	logger.Debug(ctx, "scan completed", "from_block", from, "to_block", to, "events", len(events))

	return Result{
		Events:    events,
		FromBlock: from,
		ToBlock:   to,
		Previous:  previous,
	}
}

func (s *service) Commit(ctx context.Context, channel string, result Result) error {
	if !result.Success() || result.Empty {
		return nil
	}

	if result.Previous != nil && result.ToBlock <= *result.Previous {
		return nil
	}

	if err := s.cursorStorage.SaveCursor(ctx, channel, result.ToBlock); err != nil {
		return err
	}

	metrics.CursorHeight.WithLabelValues(channel).Set(float64(result.ToBlock))
	return nil
}

// New creates a scanner backed by cs.
func New(cs CursorStorage, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:           cfg,
		cursorStorage: cs,
	}
}
