// Package runner executes notification channel passes.
//
// A pass walks IDLE -> FETCHING_SUBSCRIBERS -> SCANNING_OR_POLLING ->
// DETECTING -> DISPATCHING -> COMMITTING_CURSOR -> IDLE. Any stage may end
// the pass early: configuration, subscriber and scan failures fail the whole
// pass, while per-subject failures are isolated and reported in the Summary.
//
// At most one pass per channel runs at a time within a process. A concurrent
// Run returns immediately with StatusAlreadyRunning and performs no I/O.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/chainnotify/internal/metrics"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/scanner"
	"github.com/gabapcia/chainnotify/internal/simulate"
	"github.com/gabapcia/chainnotify/internal/walletpool"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrConfig is returned when the channel cannot run with its current
	// configuration (unknown network, empty wallet pool, unusable wallet
	// storage).
	ErrConfig = errors.New("channel configuration error")

	// ErrSubscribers is returned when the subscriber list cannot be fetched.
	ErrSubscribers = errors.New("subscriber fetch failed")

	// ErrCollect is returned when a channel fails to gather its subjects.
	ErrCollect = errors.New("channel collect failed")

	// ErrPassTimeout is returned when a pass exceeds its deadline. The
	// cursor is not committed and the channel becomes runnable again.
	ErrPassTimeout = errors.New("pass timed out")

	// ErrDetector is recorded for subjects whose detector or composer
	// panicked.
	ErrDetector = errors.New("detector failed")
)

var tracer = otel.Tracer("github.com/gabapcia/chainnotify/internal/runner")

// Runner runs passes of a single channel.
type Runner interface {
	// Channel returns the id of the channel this runner drives.
	Channel() string

	// Run executes one pass with the given override. The error is non-nil
	// when the pass failed or was interrupted; the Summary is always set.
	Run(ctx context.Context, ov simulate.Override) (Summary, error)
}

// Settings is the per-channel configuration consumed by the runner.
type Settings struct {
	// Network is the default ledger network of the channel.
	Network string

	// Wallets is the signing pool, as hex private keys.
	Wallets []string
}

// Dependencies groups the collaborators shared by every runner.
type Dependencies struct {
	Ledgers     LedgerResolver
	Wallets     walletpool.Selector
	Subscribers SubscriberDirectory
	Scanner     scanner.Service
	Dispatcher  notify.Dispatcher
}

type config struct {
	passTimeout time.Duration
	concurrency int
	guard       DeliveryGuard
	guardTTL    time.Duration
	now         func() time.Time
}

// Option configures a runner.
type Option func(*config)

// WithPassTimeout bounds the duration of a pass. Default: 5 minutes.
func WithPassTimeout(d time.Duration) Option {
	return func(c *config) {
		c.passTimeout = d
	}
}

// WithConcurrency sets the maximum number of parallel subscriber reads and
// dispatches inside a pass. Default: 8.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithDeliveryGuard enables cross-pass deduplication of subjects carrying a
// DedupKey. Claims expire after ttl.
func WithDeliveryGuard(g DeliveryGuard, ttl time.Duration) Option {
	return func(c *config) {
		c.guard = g
		c.guardTTL = ttl
	}
}

// WithClock overrides the time source handed to detectors.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

type runner struct {
	cfg      config
	channel  Channel
	settings Settings
	deps     Dependencies

	mu      sync.Mutex
	running *Pass
}

var _ Runner = (*runner)(nil)

// passResult is handed from the pass goroutine back to Run.
type passResult struct {
	summary Summary
	err     error
}

func (r *runner) Channel() string {
	return r.channel.ID()
}

// acquire registers a new pass unless one is already running.
func (r *runner) acquire(ov simulate.Override) (*Pass, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running != nil {
		return nil, false
	}

	p := NewPass(uuid.Must(uuid.NewV7()).String(), r.channel.ID(), ov, nil, r.deps.Scanner)
	p.Now = r.cfg.now()
	p.concurrency = r.cfg.concurrency

	r.running = p
	return p, true
}

// release frees the channel only if p still owns it, so a pass abandoned on
// timeout can never release a newer pass.
func (r *runner) release(p *Pass) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running == p {
		r.running = nil
	}
}

func (r *runner) Run(ctx context.Context, ov simulate.Override) (Summary, error) {
	id := r.channel.ID()

	if err := ov.Validate(); err != nil {
		return Summary{Channel: id, Status: StatusFailed, State: StateIdle, Error: err.Error()}, err
	}

	p, ok := r.acquire(ov)
	if !ok {
		logger.Info(ctx, "pass skipped, channel is already running", "channel", id)
		metrics.PassesTotal.WithLabelValues(id, string(StatusAlreadyRunning)).Inc()
		return Summary{Channel: id, Status: StatusAlreadyRunning, State: StateIdle}, nil
	}
	defer r.release(p)

	ctx, span := tracer.Start(ctx, "runner.Run", trace.WithAttributes(
		attribute.String("channel", id),
		attribute.String("pass_id", p.ID),
		attribute.Bool("dry_run", p.DryRun()),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "channel", id, "pass_id", p.ID)
	logger.Info(ctx, "pass started", "dry_run", p.DryRun(), "override", ov.Mode)

	passCtx, cancel := context.WithTimeout(ctx, r.cfg.passTimeout)
	defer cancel()

	done := make(chan passResult, 1)
	go func() {
		summary, err := r.execute(passCtx, p)
		done <- passResult{summary: summary, err: err}
	}()

	var res passResult
	select {
	case res = <-done:
	case <-passCtx.Done():
		select {
		case res = <-done:
		default:
			res = r.interrupted(ctx, p, passCtx.Err())
		}
	}

	res.summary.FinishedAt = r.cfg.now()
	r.observe(ctx, span, res)

	return res.summary, res.err
}

// interrupted builds the summary of a pass abandoned on deadline or
// cancellation. The pass goroutine keeps running until it observes the
// cancelled context but can no longer commit the cursor.
func (r *runner) interrupted(ctx context.Context, p *Pass, cause error) passResult {
	err := cause
	if errors.Is(cause, context.DeadlineExceeded) && ctx.Err() == nil {
		err = fmt.Errorf("%w after %s", ErrPassTimeout, r.cfg.passTimeout)
	}

	return passResult{
		summary: Summary{
			PassID:    p.ID,
			Channel:   p.Channel,
			Status:    StatusIncomplete,
			State:     p.currentState(),
			Simulated: p.DryRun(),
			Failures:  p.failures.list(),
			Error:     err.Error(),
			StartedAt: p.Now,
		},
		err: err,
	}
}

func (r *runner) observe(ctx context.Context, span trace.Span, res passResult) {
	s := res.summary

	metrics.PassesTotal.WithLabelValues(s.Channel, string(s.Status)).Inc()
	metrics.PassDuration.WithLabelValues(s.Channel).Observe(s.FinishedAt.Sub(s.StartedAt).Seconds())
	for _, f := range s.Failures {
		metrics.ItemFailures.WithLabelValues(s.Channel, f.Stage).Inc()
	}

	span.SetAttributes(
		attribute.String("status", string(s.Status)),
		attribute.Int("subjects", s.Subjects),
		attribute.Int("succeeded", s.Succeeded),
		attribute.Int("failed", s.Failed),
	)

	if res.err != nil {
		span.RecordError(res.err)
		span.SetStatus(codes.Error, res.err.Error())
		logger.Error(ctx, "pass ended with error", "status", s.Status, "state", s.State, "error", res.err)
		return
	}

	logger.Info(ctx, "pass finished",
		"status", s.Status,
		"subjects", s.Subjects,
		"notified", s.Notified,
		"succeeded", s.Succeeded,
		"failed", s.Failed,
		"skipped", s.Skipped,
	)
}

// New creates a runner for ch.
func New(ch Channel, settings Settings, deps Dependencies, opts ...Option) *runner {
	cfg := config{
		passTimeout: 5 * time.Minute,
		concurrency: defaultConcurrency,
		guardTTL:    10 * time.Minute,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &runner{
		cfg:      cfg,
		channel:  ch,
		settings: settings,
		deps:     deps,
	}
}
