// Package truefi tells every subscriber when new loans are posted for voting.
// All loans created since the last pass are folded into one notification per
// subscriber.
package truefi

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "truefi"

// LoanFactoryABI holds the LoanTokenCreated event of the loan factory.
const LoanFactoryABI = `[{"type":"event","name":"LoanTokenCreated","anonymous":false,"inputs":[{"name":"contractAddress","type":"address","indexed":false}]}]`

// Config is the truefi channel options block.
type Config struct {
	LoanFactory string `yaml:"loanFactory" validate:"required,eth_addr"`
	CTA         string `yaml:"cta" validate:"omitempty,url"`
}

type channel struct {
	cfg Config
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	loans, err := channels.ScanEvents(ctx, p, ledger.Filter{
		Address: p.Contract("loanFactory", c.cfg.LoanFactory),
		ABI:     LoanFactoryABI,
		Event:   "LoanTokenCreated",
	})
	if err != nil {
		return nil, err
	}

	if len(loans) == 0 {
		return nil, nil
	}

	// The newest loan identifies the batch so a re-scan of the same range
	// maps to the same delivery key.
	batch := loans[len(loans)-1].ID()

	subjects := make([]runner.Subject, 0, len(p.Subscribers))
	for _, sub := range p.Subscribers {
		subjects = append(subjects, runner.Subject{
			Key:       sub,
			Recipient: sub,
			DedupKey:  batch,
			Data:      loans,
		})
	}

	return subjects, nil
}

func (c *channel) Detect(_ *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	loans, ok := s.Data.([]ledger.Event)
	if !ok {
		return detector.Skip(), fmt.Errorf("unexpected subject data %T", s.Data)
	}

	if len(loans) == 0 {
		return detector.Skip(), nil
	}

	addresses := make([]string, 0, len(loans))
	for _, l := range loans {
		if addr, ok := l.Fields["contractAddress"].(string); ok {
			addresses = append(addresses, addr)
		}
	}

	return detector.Notify(detector.KindNewLoan, map[string]any{
		"count": len(loans),
		"loans": addresses,
	}), nil
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	body := "A new loan has been posted on TrueFi, visit to vote"
	if n, _ := v.Fields["count"].(int); n > 1 {
		body = fmt.Sprintf("%d new loans have been posted on TrueFi, visit to vote", n)
	}

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindTargeted,
		Title:     "TrueFi New Loan",
		Body:      body,
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel. CTA defaults to the TrueFi app.
func New(cfg Config) (*channel, error) {
	if cfg.CTA == "" {
		cfg.CTA = "https://app.truefi.io/home"
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	return &channel{cfg: cfg}, nil
}
