// Package ens warns subscribers whose ENS names expire soon. Names owned by a
// subscriber come from the ENS subgraph; expiry dates are read from the base
// registrar so the alert never relies on indexed data alone.
package ens

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"

	"github.com/ethereum/go-ethereum/crypto"
)

// ID is the channel id.
const ID = "ens"

// RegistrarABI is the nameExpires subset of the base registrar ABI.
const RegistrarABI = `[{"type":"function","name":"nameExpires","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}]`

// Domain is a second-level .eth name owned by a subscriber.
type Domain struct {
	Name      string
	LabelName string
}

// DomainSource lists the names registered to an address.
type DomainSource interface {
	DomainsOf(ctx context.Context, owner string) ([]Domain, error)
}

// Config is the ens channel options block.
type Config struct {
	Registrar  string `yaml:"registrar" validate:"required,eth_addr"`
	WindowDays int    `yaml:"windowDays" validate:"gte=0"`
	CTA        string `yaml:"cta" validate:"omitempty,url"`
}

type expiry struct {
	Name    string
	Expires time.Time
}

type channel struct {
	cfg     Config
	domains DomainSource
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

// labelHash is the registrar token id of a label.
func labelHash(label string) *big.Int {
	return new(big.Int).SetBytes(crypto.Keccak256([]byte(label)))
}

func (c *channel) expiryOf(ctx context.Context, p *runner.Pass, d Domain) (time.Time, error) {
	out, err := p.Ledger.ReadState(ctx, ledger.ContractCall{
		Address: p.Contract("registrar", c.cfg.Registrar),
		ABI:     RegistrarABI,
		Method:  "nameExpires",
		Args:    []any{labelHash(d.LabelName)},
	})
	if err != nil {
		return time.Time{}, err
	}

	if len(out) != 1 {
		return time.Time{}, fmt.Errorf("nameExpires returned %d values", len(out))
	}

	ts, ok := out[0].(*big.Int)
	if !ok {
		return time.Time{}, fmt.Errorf("nameExpires returned %T", out[0])
	}

	return time.Unix(ts.Int64(), 0).UTC(), nil
}

func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	return p.Poll(ctx, func(ctx context.Context, owner string) (runner.Subject, bool, error) {
		domains, err := c.domains.DomainsOf(ctx, owner)
		if err != nil {
			return runner.Subject{}, false, err
		}

		if len(domains) == 0 {
			return runner.Subject{}, false, nil
		}

		expiries := make([]expiry, 0, len(domains))
		for _, d := range domains {
			exp, err := c.expiryOf(ctx, p, d)
			if err != nil {
				return runner.Subject{}, false, fmt.Errorf("%s: %w", d.Name, err)
			}
			expiries = append(expiries, expiry{Name: d.Name, Expires: exp})
		}

		return runner.Subject{Key: owner, Recipient: owner, Data: expiries}, true, nil
	}), nil
}

func (c *channel) window(p *runner.Pass) time.Duration {
	days := float64(c.cfg.WindowDays)
	if d, ok := p.Override.Float("windowDays"); ok {
		days = d
	}

	return time.Duration(days * 24 * float64(time.Hour))
}

func (c *channel) Detect(p *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	expiries, ok := s.Data.([]expiry)
	if !ok {
		return detector.Skip(), fmt.Errorf("unexpected subject data %T", s.Data)
	}

	window := c.window(p)

	var (
		names    []string
		earliest time.Duration
	)
	for _, e := range expiries {
		v := detector.WithinWindow(p.Now, e.Expires, window)
		if !v.Notify {
			continue
		}

		names = append(names, e.Name)
		if remaining := v.Fields["remaining"].(time.Duration); earliest == 0 || remaining < earliest {
			earliest = remaining
		}
	}

	if len(names) == 0 {
		return detector.Skip(), nil
	}
	slices.Sort(names)

	return detector.Notify(detector.KindExpiry, map[string]any{
		"domains": names,
		"days":    channels.Days(earliest.Hours()),
	}), nil
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	names, _ := v.Fields["domains"].([]string)
	days, _ := v.Fields["days"].(int)

	unit := "days"
	if days == 1 {
		unit = "day"
	}

	var body string
	switch len(names) {
	case 0:
		return notify.Payload{}, errors.New("expiry verdict without domains")
	case 1:
		body = fmt.Sprintf("%s is set to expire in %d %s, tap me to renew it!", names[0], days, unit)
	default:
		body = fmt.Sprintf("Your domains %s are set to expire in %d %s, tap me to renew them!", strings.Join(names, ", "), days, unit)
	}

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindTargeted,
		Title:     "ENS Domain Expiry Alert!",
		Body:      body,
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel. WindowDays defaults to 7.
func New(cfg Config, domains DomainSource) (*channel, error) {
	if cfg.WindowDays == 0 {
		cfg.WindowDays = 7
	}
	if cfg.CTA == "" {
		cfg.CTA = "https://app.ens.domains/"
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	if domains == nil {
		return nil, fmt.Errorf("%w: ens requires a domain source", runner.ErrConfig)
	}

	return &channel{cfg: cfg, domains: domains}, nil
}
