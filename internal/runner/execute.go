package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/types"

	"golang.org/x/sync/errgroup"
)

// pending is a subject with a positive verdict and its rendered payload.
type pending struct {
	subject Subject
	payload notify.Payload
}

type deliveryResult int

const (
	deliverySent deliveryResult = iota
	deliveryFailed
	deliverySkipped
)

func (r *runner) execute(ctx context.Context, p *Pass) (Summary, error) {
	s := Summary{
		PassID:    p.ID,
		Channel:   p.Channel,
		Simulated: p.DryRun(),
		StartedAt: p.Now,
	}

	fail := func(err error) (Summary, error) {
		s.Status = StatusFailed
		s.State = p.currentState()
		s.Error = err.Error()
		s.Failures = p.failures.list()
		s.Failed = len(s.Failures)
		return s, err
	}

	p.Network = p.Override.Network(r.settings.Network)
	s.Network = p.Network

	client, err := r.deps.Ledgers.Ledger(p.Network)
	if err != nil {
		return fail(fmt.Errorf("%w: network %q: %w", ErrConfig, p.Network, err))
	}
	p.Ledger = client

	wallet, err := r.deps.Wallets.Next(ctx, p.Channel, r.settings.Wallets)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrConfig, err))
	}
	p.Wallet = wallet
	s.WalletIndex = wallet.Index

	p.setState(StateFetchingSubscribers)
	if subs, ok := p.Override.Subscribers(); ok {
		p.Subscribers = subs
	} else {
		subs, err := r.deps.Subscribers.ListSubscribers(ctx, p.Channel)
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrSubscribers, err))
		}
		p.Subscribers = subs
	}
	s.Subscribers = len(p.Subscribers)

	p.setState(StateScanningOrPolling)
	subjects, err := r.channel.Collect(ctx, p)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCollect, err))
	}
	subjects = uniqueSubjects(subjects)
	s.Subjects = len(subjects)

	p.setState(StateDetecting)
	items := r.detect(p, subjects)
	s.Notified = len(items)

	p.setState(StateDispatching)
	deliveries, counts := r.dispatch(ctx, p, items)
	s.Deliveries = deliveries
	s.Succeeded = counts[deliverySent]
	s.Skipped = counts[deliverySkipped]

	p.setState(StateCommittingCursor)
	if err := ctx.Err(); err != nil {
		s.Status = StatusIncomplete
		s.State = StateCommittingCursor
		s.Failures = p.failures.list()
		s.Failed = len(s.Failures)
		s.Error = err.Error()
		return s, err
	}

	if err := r.commit(ctx, p, &s); err != nil {
		s.Error = err.Error()
		logger.Error(ctx, "cursor commit failed", "error", err)
	}

	p.setState(StateIdle)
	s.Status = StatusCompleted
	s.State = StateIdle
	s.Failures = p.failures.list()
	s.Failed = len(s.Failures)
	return s, nil
}

// uniqueSubjects drops repeated (recipient, subject) pairs so a recipient
// is notified at most once per event within a pass.
func uniqueSubjects(subjects []Subject) []Subject {
	seen := types.NewSet[string]()
	out := make([]Subject, 0, len(subjects))

	for _, subject := range subjects {
		key := subject.DedupKey
		if key == "" {
			key = subject.Key
		}
		key = strings.ToLower(subject.Recipient) + "|" + key

		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		out = append(out, subject)
	}

	return out
}

// evaluate runs the detector and composer of one subject, turning panics
// into ErrDetector.
func (r *runner) evaluate(p *Pass, subject Subject) (item *pending, stage string, err error) {
	stage = StageDetect
	defer func() {
		if rec := recover(); rec != nil {
			item = nil
			err = fmt.Errorf("%w: panic: %v", ErrDetector, rec)
		}
	}()

	var verdict detector.Verdict
	verdict, err = r.channel.Detect(p, subject)
	if err != nil || !verdict.Notify {
		return nil, stage, err
	}

	stage = StageCompose
	payload, err := r.channel.Compose(p, subject, verdict)
	if err != nil {
		return nil, stage, err
	}

	if payload.Recipient == "" {
		payload.Recipient = subject.Recipient
	}

	return &pending{subject: subject, payload: payload}, stage, nil
}

func (r *runner) detect(p *Pass, subjects []Subject) []pending {
	items := make([]pending, 0, len(subjects))

	for _, subject := range subjects {
		item, stage, err := r.evaluate(p, subject)
		if err != nil {
			p.failures.add(subject.Key, stage, err)
			continue
		}

		if item != nil {
			items = append(items, *item)
		}
	}

	return items
}

func (r *runner) dispatch(ctx context.Context, p *Pass, items []pending) ([]Delivery, map[deliveryResult]int) {
	deliveries := make([]*Delivery, len(items))
	results := make([]deliveryResult, len(items))

	var g errgroup.Group
	g.SetLimit(r.cfg.concurrency)

	for i, item := range items {
		g.Go(func() error {
			d, res := r.deliver(ctx, p, item)
			deliveries[i], results[i] = d, res
			return nil
		})
	}
	_ = g.Wait()

	counts := make(map[deliveryResult]int, 3)
	out := make([]Delivery, 0, len(items))
	for i := range items {
		counts[results[i]]++
		if deliveries[i] != nil {
			out = append(out, *deliveries[i])
		}
	}

	return out, counts
}

func (r *runner) deliver(ctx context.Context, p *Pass, item pending) (*Delivery, deliveryResult) {
	key := item.subject.DedupKey
	guarded := r.cfg.guard != nil && key != "" && !p.DryRun()
	if guarded {
		// Keys are per recipient so one event can reach every subscriber.
		key = strings.ToLower(item.payload.Recipient) + ":" + key

		err := r.cfg.guard.ClaimDelivery(ctx, p.Channel, key, r.cfg.guardTTL)
		switch {
		case errors.Is(err, ErrAlreadyDelivered), errors.Is(err, ErrDeliveryInProgress):
			logger.Debug(ctx, "delivery skipped", "subject", item.subject.Key, "reason", err)
			return nil, deliverySkipped
		case err != nil:
			p.failures.add(item.subject.Key, StageGuard, err)
			return nil, deliveryFailed
		}
	}

	out := r.deps.Dispatcher.Send(ctx, notify.Delivery{
		Channel:   p.Channel,
		Payload:   item.payload,
		SenderKey: p.Wallet.Key,
		DryRun:    p.DryRun(),
	})

	d := deliveryFromOutcome(item.subject, out)
	if out.Err != nil {
		p.failures.add(item.subject.Key, StageDispatch, out.Err)
		return &d, deliveryFailed
	}

	if guarded {
		if err := r.cfg.guard.MarkDelivered(ctx, p.Channel, key); err != nil {
			logger.Warn(ctx, "failed to mark delivery", "subject", item.subject.Key, "error", err)
		}
	}

	return &d, deliverySent
}

// commit advances the scan cursor. Dry runs and passes scanning an explicit
// override window never move it.
func (r *runner) commit(ctx context.Context, p *Pass, s *Summary) error {
	res := p.scanResult()
	if res == nil {
		return nil
	}

	s.Cursor = &CursorRange{From: res.FromBlock, To: res.ToBlock}

	_, hasFrom := p.Override.FromBlock()
	_, hasTo := p.Override.ToBlock()
	if res.Empty || p.DryRun() || hasFrom || hasTo {
		return nil
	}

	if err := r.deps.Scanner.Commit(ctx, p.Channel, *res); err != nil {
		return fmt.Errorf("commit cursor %d: %w", res.ToBlock, err)
	}

	s.Cursor.Committed = true
	return nil
}
