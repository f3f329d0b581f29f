package runner

import (
	"sync"
	"time"

	"github.com/gabapcia/chainnotify/internal/notify"
)

// State is the phase a pass is in.
type State string

const (
	StateIdle                State = "IDLE"
	StateFetchingSubscribers State = "FETCHING_SUBSCRIBERS"
	StateScanningOrPolling   State = "SCANNING_OR_POLLING"
	StateDetecting           State = "DETECTING"
	StateDispatching         State = "DISPATCHING"
	StateCommittingCursor    State = "COMMITTING_CURSOR"
)

// Status is the final result of a pass.
type Status string

const (
	StatusCompleted      Status = "completed"
	StatusAlreadyRunning Status = "already_running"
	StatusFailed         Status = "failed"
	StatusIncomplete     Status = "incomplete"
)

// Stages reported on ItemFailure.
const (
	StagePoll     = "poll"
	StageDecode   = "decode"
	StageDetect   = "detect"
	StageCompose  = "compose"
	StageGuard    = "guard"
	StageDispatch = "dispatch"
)

// ItemFailure records a per-subject failure that did not abort the pass.
type ItemFailure struct {
	Subject string `json:"subject"`
	Stage   string `json:"stage"`
	Error   string `json:"error"`
}

// Delivery summarizes one dispatch outcome.
type Delivery struct {
	Subject    string `json:"subject"`
	Recipient  string `json:"recipient"`
	Kind       string `json:"kind"`
	ContentRef string `json:"contentRef,omitempty"`
	TxHash     string `json:"txHash,omitempty"`
	Simulated  bool   `json:"simulated"`
	Error      string `json:"error,omitempty"`
}

// CursorRange describes the block range scanned during the pass.
type CursorRange struct {
	From      uint64 `json:"from"`
	To        uint64 `json:"to"`
	Committed bool   `json:"committed"`
}

// Summary is returned by Run.
type Summary struct {
	PassID      string        `json:"passId,omitempty"`
	Channel     string        `json:"channel"`
	Network     string        `json:"network,omitempty"`
	Status      Status        `json:"status"`
	State       State         `json:"state"`
	Simulated   bool          `json:"simulated"`
	WalletIndex int           `json:"walletIndex,omitempty"`
	Subscribers int           `json:"subscribers"`
	Subjects    int           `json:"subjects"`
	Notified    int           `json:"notified"`
	Succeeded   int           `json:"succeeded"`
	Failed      int           `json:"failed"`
	Skipped     int           `json:"skipped"`
	Cursor      *CursorRange  `json:"cursor,omitempty"`
	Deliveries  []Delivery    `json:"deliveries,omitempty"`
	Failures    []ItemFailure `json:"failures,omitempty"`
	Error       string        `json:"error,omitempty"`
	StartedAt   time.Time     `json:"startedAt"`
	FinishedAt  time.Time     `json:"finishedAt"`
}

// failureLog collects ItemFailures from concurrent workers.
type failureLog struct {
	mu       sync.Mutex
	failures []ItemFailure
}

func (l *failureLog) add(subject, stage string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures = append(l.failures, ItemFailure{Subject: subject, Stage: stage, Error: err.Error()})
}

func (l *failureLog) list() []ItemFailure {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]ItemFailure(nil), l.failures...)
}

func deliveryFromOutcome(subject Subject, out notify.Outcome) Delivery {
	d := Delivery{
		Subject:    subject.Key,
		Recipient:  out.Payload.Recipient,
		Kind:       out.Payload.Kind.String(),
		ContentRef: string(out.ContentRef),
		TxHash:     string(out.TxHash),
		Simulated:  out.Simulated,
	}

	if out.Err != nil {
		d.Error = out.Err.Error()
	}

	return d
}
