// Package scheduler runs every enabled channel on its own interval for the
// lifetime of the process.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/x/chflow"
	"github.com/gabapcia/chainnotify/internal/runner"
	"github.com/gabapcia/chainnotify/internal/simulate"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Job is one channel and how often it runs.
type Job struct {
	Runner   runner.Runner
	Interval time.Duration
}

// Service starts and stops the scheduled passes.
type Service interface {
	// Start launches one ticker per job. Passes use a live override.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops every ticker and waits for in flight passes to return.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type config struct {
	runOnStart bool
}

type Option func(*config)

// WithRunOnStart runs every job once right after Start instead of waiting
// for the first tick.
func WithRunOnStart() Option {
	return func(c *config) {
		c.runOnStart = true
	}
}

type service struct {
	cfg  config
	jobs []Job

	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
}

var _ Service = new(service)

func (s *service) pass(ctx context.Context, r runner.Runner) {
	summary, err := r.Run(ctx, simulate.Live())
	if err != nil {
		logger.Error(ctx, "scheduled pass failed", "channel", r.Channel(), "status", summary.Status, "error", err)
	}
}

func (s *service) loop(ctx context.Context, job Job) {
	ctx = logger.Derive(ctx, "channel", job.Runner.Channel())

	chflow.Every(ctx, job.Interval, s.cfg.runOnStart, func(ctx context.Context) {
		s.pass(ctx, job.Runner)
	})
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop(ctx, job)
		}()

		logger.Info(ctx, "channel scheduled", "channel", job.Runner.Channel(), "interval", job.Interval)
	}

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New validates jobs and creates the scheduler.
func New(jobs []Job, opts ...Option) (*service, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, j := range jobs {
		if j.Runner == nil {
			return nil, errors.New("job without runner")
		}
		if j.Interval <= 0 {
			return nil, fmt.Errorf("channel %s: interval must be positive", j.Runner.Channel())
		}
	}

	return &service{cfg: cfg, jobs: jobs}, nil
}
