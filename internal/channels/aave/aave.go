// Package aave alerts subscribers whose lending position health factor drops
// to or below a threshold.
package aave

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "aave"

// LendingPoolABI is the subset of the lending pool ABI read by the channel.
const LendingPoolABI = `[{"type":"function","name":"getUserAccountData","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"totalCollateralETH","type":"uint256"},{"name":"totalDebtETH","type":"uint256"},{"name":"availableBorrowsETH","type":"uint256"},{"name":"currentLiquidationThreshold","type":"uint256"},{"name":"ltv","type":"uint256"},{"name":"healthFactor","type":"uint256"}]}]`

var errUnexpectedOutput = errors.New("unexpected getUserAccountData output")

// Config is the aave channel options block.
type Config struct {
	LendingPool string  `yaml:"lendingPool" validate:"required,eth_addr"`
	Threshold   float64 `yaml:"threshold" validate:"gte=0"`
	Precision   int     `yaml:"precision" validate:"gte=0,lte=18"`
	CTA         string  `yaml:"cta" validate:"omitempty,url"`
}

type channel struct {
	cfg Config
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

func (c *channel) healthFactor(ctx context.Context, p *runner.Pass, user string) (float64, error) {
	out, err := p.Ledger.ReadState(ctx, ledger.ContractCall{
		Address: p.Contract("lendingPool", c.cfg.LendingPool),
		ABI:     LendingPoolABI,
		Method:  "getUserAccountData",
		Args:    []any{user},
	})
	if err != nil {
		return 0, err
	}

	if len(out) != 6 {
		return 0, fmt.Errorf("%w: %d values", errUnexpectedOutput, len(out))
	}

	hf, ok := out[5].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("%w: healthFactor is %T", errUnexpectedOutput, out[5])
	}

	return channels.FromUnits(hf, 18), nil
}

func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	return p.Poll(ctx, func(ctx context.Context, user string) (runner.Subject, bool, error) {
		hf, err := c.healthFactor(ctx, p, user)
		if err != nil {
			return runner.Subject{}, false, err
		}

		logger.Debug(ctx, "health factor read", "user", user, "health_factor", hf)
		return runner.Subject{Key: user, Recipient: user, Data: hf}, true, nil
	}), nil
}

func (c *channel) threshold(p *runner.Pass) float64 {
	if t, ok := p.Override.Float("threshold"); ok {
		return t
	}

	return c.cfg.Threshold
}

func (c *channel) Detect(p *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	hf, ok := s.Data.(float64)
	if !ok {
		return detector.Skip(), fmt.Errorf("unexpected subject data %T", s.Data)
	}

	return detector.BelowThreshold(hf, c.threshold(p)), nil
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	hf, _ := v.Fields["ratio"].(float64)

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindTargeted,
		Title:     "Aave Liquidity Alert!",
		Body:      fmt.Sprintf("Your account has healthFactor %s. Maintain it above 1 to avoid liquidation.", channels.FormatNumber(hf, c.cfg.Precision)),
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel. Threshold defaults to 1.6 and Precision to 3.
func New(cfg Config) (*channel, error) {
	if cfg.Threshold == 0 {
		cfg.Threshold = 1.6
	}
	if cfg.Precision == 0 {
		cfg.Precision = 3
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	return &channel{cfg: cfg}, nil
}
