// Package governance broadcasts every new on-chain governance proposal of a
// Governor contract to the subscribers of the channel.
package governance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gabapcia/chainnotify/internal/channels"
	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ID is the channel id.
const ID = "governance"

// GovernorABI holds the ProposalCreated event of a GovernorAlpha contract.
const GovernorABI = `[{"type":"event","name":"ProposalCreated","anonymous":false,"inputs":[{"name":"id","type":"uint256","indexed":false},{"name":"proposer","type":"address","indexed":false},{"name":"targets","type":"address[]","indexed":false},{"name":"values","type":"uint256[]","indexed":false},{"name":"signatures","type":"string[]","indexed":false},{"name":"calldatas","type":"bytes[]","indexed":false},{"name":"startBlock","type":"uint256","indexed":false},{"name":"endBlock","type":"uint256","indexed":false},{"name":"description","type":"string","indexed":false}]}]`

// maxDescription bounds the part of the description quoted in the body.
const maxDescription = 200

// Config is the governance channel options block.
type Config struct {
	Governor string `yaml:"governor" validate:"required,eth_addr"`
	Project  string `yaml:"project" validate:"required"`
	CTA      string `yaml:"cta" validate:"omitempty,url"`
}

type channel struct {
	cfg Config
}

var _ runner.Channel = (*channel)(nil)

func (c *channel) ID() string {
	return ID
}

// Collect scans ProposalCreated logs and addresses each of them to the
// channel itself.
func (c *channel) Collect(ctx context.Context, p *runner.Pass) ([]runner.Subject, error) {
	addr, err := channels.ChannelAddress(p)
	if err != nil {
		return nil, err
	}

	events, err := channels.ScanEvents(ctx, p, ledger.Filter{
		Address: p.Contract("governor", c.cfg.Governor),
		ABI:     GovernorABI,
		Event:   "ProposalCreated",
	})
	if err != nil {
		return nil, err
	}

	for i := range events {
		events[i].Recipient = addr
	}

	return channels.EventSubjects(events), nil
}

func (c *channel) Detect(_ *runner.Pass, s runner.Subject) (detector.Verdict, error) {
	ev, ok := s.Data.(ledger.Event)
	if !ok {
		return detector.Skip(), fmt.Errorf("unexpected subject data %T", s.Data)
	}

	proposer, _ := ev.Fields["proposer"].(string)
	if proposer == "" {
		return detector.Skip(), errors.New("proposal without proposer")
	}

	description, _ := ev.Fields["description"].(string)

	return detector.Notify(detector.KindProposal, map[string]any{
		"id":          ev.Fields["id"],
		"proposer":    proposer,
		"description": summarize(description),
	}), nil
}

func (c *channel) Compose(_ *runner.Pass, s runner.Subject, v detector.Verdict) (notify.Payload, error) {
	proposer, _ := v.Fields["proposer"].(string)
	description, _ := v.Fields["description"].(string)

	body := fmt.Sprintf("%s just proposed", proposer)
	if description != "" {
		body += ": " + description
	}

	return notify.Payload{
		Recipient: s.Recipient,
		Kind:      notify.KindBroadcast,
		Title:     fmt.Sprintf("New %s Proposal", c.cfg.Project),
		Body:      body,
		CTA:       c.cfg.CTA,
	}, nil
}

// summarize keeps the first line of a proposal description, cut to
// maxDescription runes.
func summarize(description string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	line = strings.TrimLeft(strings.TrimSpace(line), "# ")

	if utf8.RuneCountInString(line) <= maxDescription {
		return line
	}

	return string([]rune(line)[:maxDescription-1]) + "…"
}

// New creates the channel.
func New(cfg Config) (*channel, error) {
	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Join(runner.ErrConfig, err)
	}

	return &channel{cfg: cfg}, nil
}
