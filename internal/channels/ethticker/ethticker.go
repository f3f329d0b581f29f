// Package ethticker broadcasts the ETH price and its recent movement to every
// subscriber of the channel.
package ethticker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "ethticker"

// Quote is the latest market data of one asset, in USD.
type Quote struct {
	Symbol    string
	Price     float64
	Change1h  float64
	Change24h float64
	Change7d  float64
}

// QuoteSource fetches market quotes.
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// Config is the ethticker channel options block.
type Config struct {
	Symbol string `yaml:"symbol" validate:"required,alphanum"`

	// MinMove is the hourly change, in percent, below which no update is
	// sent. Zero broadcasts every pass.
	MinMove float64 `yaml:"minMove" validate:"gte=0"`
	CTA     string  `yaml:"cta" validate:"omitempty,url"`
}

type channel struct {
	cfg    Config
	quotes QuoteSource
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	addr, err := channels.ChannelAddress(p)
	if err != nil {
		return nil, err
	}

	q, err := c.quotes.Quote(ctx, c.cfg.Symbol)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", c.cfg.Symbol, err)
	}

	logger.Debug(ctx, "quote fetched", "symbol", q.Symbol, "price", q.Price)
	return []runner.Subject{{Key: c.cfg.Symbol, Recipient: addr, Data: q}}, nil
}

func (c *channel) Detect(p *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	q, ok := s.Data.(Quote)
	if !ok {
		return detector.Skip(), fmt.Errorf("unexpected subject data %T", s.Data)
	}

	minimum := c.cfg.MinMove
	if m, ok := p.Override.Float("minMove"); ok {
		minimum = m
	}

	v := detector.PercentMove(q.Change1h, minimum)
	if v.Notify {
		v.Fields["quote"] = q
	}

	return v, nil
}

func movement(label string, change float64) string {
	return fmt.Sprintf("%s Movement: %s%%", label, channels.FormatNumber(change, 2))
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	q, ok := v.Fields["quote"].(Quote)
	if !ok {
		return notify.Payload{}, errors.New("price verdict without quote")
	}

	body := strings.Join([]string{
		movement("Hourly", q.Change1h),
		movement("Daily", q.Change24h),
		movement("Weekly", q.Change7d),
	}, "\n")

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindBroadcast,
		Title:     fmt.Sprintf("%s at $%s", c.cfg.Symbol, channels.FormatNumber(q.Price, 2)),
		Body:      body,
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel. Symbol defaults to ETH.
func New(cfg Config, quotes QuoteSource) (*channel, error) {
	if cfg.Symbol == "" {
		cfg.Symbol = "ETH"
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	if quotes == nil {
		return nil, fmt.Errorf("%w: ethticker requires a quote source", runner.ErrConfig)
	}

	return &channel{cfg: cfg, quotes: quotes}, nil
}
