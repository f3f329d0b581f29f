package runner

import (
	"context"

	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/notify"
)

// Subject is one unit a channel asks the runner to evaluate: a subscriber
// whose state was polled, a decoded log entry, or a feed observation.
type Subject struct {
	// Key identifies the subject in logs and failure reports.
	Key string

	// Recipient is the address the notification for this subject goes to.
	Recipient string

	// DedupKey, when set, makes the delivery idempotent across passes
	// through the configured DeliveryGuard (e.g. "<txHash>:<logIndex>").
	DedupKey string

	// Data carries the channel specific observation evaluated by Detect.
	Data any
}

// Channel is implemented by every notification channel.
//
// Collect performs all I/O for the pass (log scans through Pass.Scan,
// per-subscriber reads through Pass.Poll, feed lookups). Detect must be a
// pure function of the pass parameters and the subject. Compose renders the
// message for a positive verdict.
type Channel interface {
	ID() string
	Collect(ctx context.Context, pass *Pass) ([]Subject, error)
	Detect(pass *Pass, subject Subject) (detector.Verdict, error)
	Compose(pass *Pass, subject Subject, verdict detector.Verdict) (notify.Payload, error)
}

// LedgerResolver returns the shared ledger client of a network.
type LedgerResolver interface {
	Ledger(network string) (ledger.Client, error)
}

// SubscriberDirectory lists the subscribers of a channel.
type SubscriberDirectory interface {
	ListSubscribers(ctx context.Context, channel string) ([]string, error)
}
