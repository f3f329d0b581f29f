// Package pooltogether congratulates prize pool winners.
package pooltogether

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "pooltogether"

// PrizeStrategyABI holds the Awarded event of the prize strategy.
const PrizeStrategyABI = `[{"type":"event","name":"Awarded","anonymous":false,"inputs":[{"name":"winner","type":"address","indexed":true},{"name":"token","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]}]`

// Config is the pooltogether channel options block.
type Config struct {
	PrizeStrategy string `yaml:"prizeStrategy" validate:"required,eth_addr"`
	Symbol        string `yaml:"symbol"`
	Decimals      int    `yaml:"decimals" validate:"gte=0,lte=36"`
	Precision     int    `yaml:"precision" validate:"gte=0,lte=18"`
	CTA           string `yaml:"cta" validate:"omitempty,url"`
}

type channel struct {
	cfg Config
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	events, err := channels.ScanEvents(ctx, p, ledger.Filter{
		Address:        p.Contract("prizeStrategy", c.cfg.PrizeStrategy),
		ABI:            PrizeStrategyABI,
		Event:          "Awarded",
		RecipientField: "winner",
	})
	if err != nil {
		return nil, err
	}

	return channels.EventSubjects(events), nil
}

func (c *channel) Detect(_ *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	ev, ok := s.Data.(ledger.Event)
	if !ok {
		return detector.Skip(), errors.New("subject is not an event")
	}

	amount, ok := ev.Fields["amount"].(*big.Int)
	if !ok {
		return detector.Skip(), fmt.Errorf("awarded event %s has no amount", ev.ID())
	}

	// Zero prizes are emitted for empty draws.
	if amount.Sign() == 0 {
		return detector.Skip(), nil
	}

	return detector.Notify(detector.KindAward, map[string]any{"amount": amount}), nil
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	amount, _ := v.Fields["amount"].(*big.Int)
	formatted := channels.FormatNumber(channels.FromUnits(amount, c.cfg.Decimals), c.cfg.Precision)
	if c.cfg.Symbol != "" {
		formatted += " " + c.cfg.Symbol
	}

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindTargeted,
		Title:     "You Have Won!",
		Body:      fmt.Sprintf("You have won %s from PoolTogether. Wen party?", formatted),
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel. Decimals defaults to 18 and Precision to 2.
func New(cfg Config) (*channel, error) {
	if cfg.Decimals == 0 {
		cfg.Decimals = 18
	}
	if cfg.Precision == 0 {
		cfg.Precision = 2
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	return &channel{cfg: cfg}, nil
}
