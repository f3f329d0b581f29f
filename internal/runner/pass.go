package runner

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/scanner"
	"github.com/gabapcia/chainnotify/internal/simulate"
	"github.com/gabapcia/chainnotify/internal/walletpool"

	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// Pass carries the per-execution context handed to a Channel. It is created
// by the runner for every Run and discarded afterwards.
type Pass struct {
	ID       string
	Channel  string
	Network  string
	Override simulate.Override
	Now      time.Time

	// Wallet is the signer selected for this pass.
	Wallet walletpool.Wallet

	// Subscribers is the recipient list of the pass, either fetched from the
	// directory or taken from the override.
	Subscribers []string

	Ledger ledger.Client

	scanner     scanner.Service
	concurrency int
	failures    *failureLog

	mu    sync.Mutex
	state State
	scan  *scanner.Result
}

// NewPass builds a pass bound to channel. Callers outside the runner use it
// to exercise a Channel directly.
func NewPass(id, channel string, ov simulate.Override, l ledger.Client, sc scanner.Service) *Pass {
	return &Pass{
		ID:          id,
		Channel:     channel,
		Override:    ov,
		Now:         time.Now(),
		Ledger:      l,
		scanner:     sc,
		concurrency: defaultConcurrency,
		failures:    &failureLog{},
		state:       StateIdle,
	}
}

// Scan runs an incremental log scan for the channel. The result is kept on
// the pass and its cursor is committed by the runner once every item was
// handled. At most one scan per pass is tracked; later calls replace it.
// Events that failed to decode are recorded as item failures and left out
// of the returned result.
func (p *Pass) Scan(ctx context.Context, filter ledger.Filter) (scanner.Result, error) {
	var window scanner.Window
	if from, ok := p.Override.FromBlock(); ok {
		window.From = &from
	}
	if to, ok := p.Override.ToBlock(); ok {
		window.To = &to
	}

	result := p.scanner.Scan(ctx, p.Ledger, p.Channel, filter, window)
	if !result.Success() {
		return result, result.Err
	}

	decoded := result.Events[:0:0]
	for _, ev := range result.Events {
		if ev.Err != nil {
			p.failures.add(ev.ID(), StageDecode, ev.Err)
			continue
		}
		decoded = append(decoded, ev)
	}
	result.Events = decoded

	p.mu.Lock()
	p.scan = &result
	p.mu.Unlock()

	return result, nil
}

// Poll calls fn once per subscriber with bounded concurrency. Subscribers
// whose read fails are recorded as item failures and left out; fn returns
// false to skip a subscriber without failing it.
func (p *Pass) Poll(ctx context.Context, fn func(ctx context.Context, subscriber string) (Subject, bool, error)) []Subject {
	results := make([]*Subject, len(p.Subscribers))

	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i, subscriber := range p.Subscribers {
		g.Go(func() error {
			if ctx.Err() != nil {
				p.failures.add(subscriber, StagePoll, ctx.Err())
				return nil
			}

			subject, ok, err := fn(ctx, subscriber)
			if err != nil {
				p.failures.add(subscriber, StagePoll, err)
				return nil
			}

			if ok {
				results[i] = &subject
			}
			return nil
		})
	}
	_ = g.Wait()

	subjects := make([]Subject, 0, len(results))
	for _, s := range results {
		if s != nil {
			subjects = append(subjects, *s)
		}
	}

	return subjects
}

// Fail records an item level failure observed by the channel during Collect.
func (p *Pass) Fail(subject, stage string, err error) {
	p.failures.add(subject, stage, err)
}

// Contract returns the contract address registered under name, honoring
// address overrides.
func (p *Pass) Contract(name, def string) string {
	return p.Override.Address(name, def)
}

// DryRun reports whether deliveries of this pass are simulated.
func (p *Pass) DryRun() bool {
	return p.Override.DryRunDelivery()
}

func (p *Pass) scanResult() *scanner.Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.scan
}

func (p *Pass) setState(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = s
}

func (p *Pass) currentState() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}
