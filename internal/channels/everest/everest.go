// Package everest notifies registry members when a challenge is opened
// against their project.
package everest

import (
	"context"
	"errors"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "everest"

// RegistryABI holds the MemberChallenged event of the Everest registry.
const RegistryABI = `[{"type":"event","name":"MemberChallenged","anonymous":false,"inputs":[{"name":"member","type":"address","indexed":true},{"name":"challengeID","type":"uint256","indexed":true},{"name":"challenger","type":"address","indexed":true},{"name":"challengeEndTime","type":"uint256","indexed":false},{"name":"details","type":"bytes32","indexed":false}]}]`

// Config is the everest channel options block.
type Config struct {
	Registry string `yaml:"registry" validate:"required,eth_addr"`
	CTA      string `yaml:"cta" validate:"omitempty,url"`
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
		Address:        p.Contract("registry", c.cfg.Registry),
		ABI:            RegistryABI,
		Event:          "MemberChallenged",
		RecipientField: "member",
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

	return detector.Notify(detector.KindChallenge, ev.Fields), nil
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, _ detector.Verdict) (notify.Payload, error) {
	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindTargeted,
		Title:     "Challenge made",
		Body:      "A challenge has been made on your Everest Project",
		CTA:       c.cfg.CTA,
	}, nil
}

// New creates the channel.
func New(cfg Config) (*channel, error) {
	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	return &channel{cfg: cfg}, nil
}
