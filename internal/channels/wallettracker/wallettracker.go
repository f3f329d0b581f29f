// Package wallettracker reports balance movements of subscriber wallets.
//
// Balances of ETH and of every configured ERC20 token are compared with the
// value cached on the previous pass. The first observation of an asset only
// seeds the cache. The channel owner's own wallet is never tracked.
package wallettracker

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "wallettracker"

// ERC20ABI is the balanceOf subset of the ERC-20 ABI.
const ERC20ABI = `[{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}]`

// ErrNoBalance is returned by a BalanceStore for assets never observed.
var ErrNoBalance = errors.New("no cached balance")

// BalanceStore caches the last observed balance per wallet and asset.
type BalanceStore interface {
	LoadBalance(ctx context.Context, channel, address, asset string) (*big.Int, error)
	SaveBalance(ctx context.Context, channel, address, asset string, amount *big.Int) error
}

// Token is an ERC-20 balance tracked next to ETH.
type Token struct {
	Symbol   string `yaml:"symbol" validate:"required"`
	Address  string `yaml:"address" validate:"required,eth_addr"`
	Decimals int    `yaml:"decimals" validate:"gte=0,lte=36"`
}

// Config is the wallettracker channel options block.
type Config struct {
	Owner     string  `yaml:"owner" validate:"omitempty,eth_addr"`
	Tokens    []Token `yaml:"tokens" validate:"dive"`
	Precision int     `yaml:"precision" validate:"gte=0,lte=18"`
	CTA       string  `yaml:"cta" validate:"omitempty,url"`
}

// holding is one asset balance of a wallet, before and after the pass.
type holding struct {
	Symbol   string
	Decimals int
	Previous *big.Int
	Current  *big.Int
}

// change is a detected movement, in display units.
type change struct {
	Symbol  string
	Delta   float64
	Balance float64
}

type channel struct {
	cfg   Config
	store BalanceStore
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

func (c *channel) current(ctx context.Context, p *runner.Pass, wallet string, t *Token) (*big.Int, error) {
	if t == nil {
		return p.Ledger.Balance(ctx, wallet)
	}

	out, err := p.Ledger.ReadState(ctx, ledger.ContractCall{
		Address: p.Contract(strings.ToLower(t.Symbol), t.Address),
		ABI:     ERC20ABI,
		Method:  "balanceOf",
		Args:    []any{wallet},
	})
	if err != nil {
		return nil, err
	}

	if len(out) != 1 {
		return nil, fmt.Errorf("balanceOf returned %d values", len(out))
	}

	bal, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("balanceOf returned %T", out[0])
	}

	return bal, nil
}

func (c *channel) observe(ctx context.Context, p *runner.Pass, wallet string, t *Token) (holding, error) {
	h := holding{Symbol: "ETH", Decimals: 18}
	if t != nil {
		h.Symbol, h.Decimals = t.Symbol, t.Decimals
	}

	cur, err := c.current(ctx, p, wallet, t)
	if err != nil {
		return h, fmt.Errorf("%s balance: %w", h.Symbol, err)
	}
	h.Current = cur

	prev, err := c.store.LoadBalance(ctx, ID, wallet, h.Symbol)
	switch {
	case errors.Is(err, ErrNoBalance):
	case err != nil:
		return h, fmt.Errorf("%s cached balance: %w", h.Symbol, err)
	default:
		h.Previous = prev
	}

	if !p.DryRun() && (prev == nil || prev.Cmp(cur) != 0) {
		if err := c.store.SaveBalance(ctx, ID, wallet, h.Symbol, cur); err != nil {
			return h, fmt.Errorf("%s cache balance: %w", h.Symbol, err)
		}
	}

	return h, nil
}

func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	return p.Poll(ctx, func(ctx context.Context, wallet string) (runner.Subject, bool, error) {
		if c.cfg.Owner != "" && strings.EqualFold(wallet, c.cfg.Owner) {
			return runner.Subject{}, false, nil
		}

		holdings := make([]holding, 0, len(c.cfg.Tokens)+1)

		h, err := c.observe(ctx, p, wallet, nil)
		if err != nil {
			return runner.Subject{}, false, err
		}
		holdings = append(holdings, h)

		for i := range c.cfg.Tokens {
			h, err := c.observe(ctx, p, wallet, &c.cfg.Tokens[i])
			if err != nil {
				return runner.Subject{}, false, err
			}
			holdings = append(holdings, h)
		}

		return runner.Subject{Key: wallet, Recipient: wallet, Data: holdings}, true, nil
	}), nil
}

func (c *channel) Detect(_ *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	holdings, ok := s.Data.([]holding)
	if !ok {
		return detector.Skip(), fmt.Errorf("unexpected subject data %T", s.Data)
	}

	var changes []change
	for _, h := range holdings {
		v := detector.BalanceDelta(h.Previous, h.Current)
		if !v.Notify {
			continue
		}

		changes = append(changes, change{
			Symbol:  h.Symbol,
			Delta:   channels.FromUnits(v.Fields["delta"].(*big.Int), h.Decimals),
			Balance: channels.FromUnits(h.Current, h.Decimals),
		})
	}

	if len(changes) == 0 {
		return detector.Skip(), nil
	}

	return detector.Notify(detector.KindBalance, map[string]any{"changes": changes}), nil
}

// summary renders one line per moved asset under a fixed header.
func (c *channel) summary(changes []change) string {
	var b strings.Builder
	b.WriteString("Summary & Latest Balance\n---------")

	for _, ch := range changes {
		sign := "[+]"
		if ch.Delta < 0 {
			sign = "[-]"
		}

		fmt.Fprintf(&b, "\n%s %-6s %s %s (%s %s)",
			sign,
			ch.Symbol+":",
			channels.FormatNumber(ch.Balance, c.cfg.Precision), ch.Symbol,
			channels.FormatSigned(ch.Delta, c.cfg.Precision), ch.Symbol,
		)
	}

	return b.String()
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	changes, ok := v.Fields["changes"].([]change)
	if !ok || len(changes) == 0 {
		return notify.Payload{}, errors.New("balance verdict without changes")
	}

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindTargeted,
		Title:     "Wallet Tracker Alert!",
		Body:      c.summary(changes),
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel. Precision defaults to 3.
func New(cfg Config, store BalanceStore) (*channel, error) {
	if cfg.Precision == 0 {
		cfg.Precision = 3
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	if store == nil {
		return nil, fmt.Errorf("%w: wallettracker requires a balance store", runner.ErrConfig)
	}

	return &channel{cfg: cfg, store: store}, nil
}
