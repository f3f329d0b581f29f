// Package retry runs fallible operations with exponential backoff. It is a
// thin layer over avast/retry-go used for content uploads and storage
// connection start-up.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
//	err := r.Execute(ctx, func() error {
//	    return store.Ping(ctx)
//	})
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/chainnotify/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out or the
// context is done.
type Retry interface {
	// Execute calls operation at least once. The returned error is the last
	// one observed, or the context error when ctx ends first.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	retryIf  func(error) bool
	name     string
}

type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// Permanent marks err as not worth retrying. Execute returns it right away.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// Transient reports whether err may succeed on a later attempt. Context
// cancellation and deadlines never do.
func Transient(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Context(ctx),
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(r.cfg.retryIf),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "operation failed, retrying", "operation", r.cfg.name, "attempt", n+1, "error", err)
		}),
	)
}

// New creates a Retry. Defaults: 3 attempts, 1s base delay capped at 5s,
// retrying every Transient error.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    time.Second,
		maxDelay: 5 * time.Second,
		retryIf:  Transient,
		name:     "unnamed",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry. Later delays double.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithRetryIf replaces the predicate deciding whether an error is retried.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithName labels retry log lines.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
