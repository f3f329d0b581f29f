// Package detector holds the pure decision functions channels use to turn an
// observed value into a Verdict. Nothing here performs I/O or reads the
// clock; callers pass "now" explicitly so every rule is deterministic.
package detector

import (
	"math/big"
	"time"

	"github.com/gabapcia/chainnotify/internal/ledger"
)

// Verdict kinds shared by the bundled channels.
const (
	KindRiskAlert   = "risk_alert"
	KindExpiry      = "expiry_alert"
	KindBalance     = "balance_change"
	KindNewItem     = "new_item"
	KindPriceUpdate = "price_update"
	KindChallenge   = "challenge"
	KindAward       = "award"
	KindNewLoan     = "new_loan"
	KindProposal    = "proposal"
)

// Verdict is the outcome of evaluating one subject.
type Verdict struct {
	Notify bool
	Kind   string
	Fields map[string]any
}

// Skip is the negative verdict.
func Skip() Verdict {
	return Verdict{}
}

// Notify builds a positive verdict of the given kind.
func Notify(kind string, fields map[string]any) Verdict {
	return Verdict{Notify: true, Kind: kind, Fields: fields}
}

// BelowThreshold notifies when ratio is at or below threshold. A ratio that
// sits exactly on the threshold is considered at risk.
func BelowThreshold(ratio, threshold float64) Verdict {
	if ratio > threshold {
		return Skip()
	}

	return Notify(KindRiskAlert, map[string]any{
		"ratio":     ratio,
		"threshold": threshold,
	})
}

// WithinWindow notifies when deadline is in the future and closer than
// window. Deadlines already in the past do not notify.
func WithinWindow(now, deadline time.Time, window time.Duration) Verdict {
	remaining := deadline.Sub(now)
	if remaining <= 0 || remaining >= window {
		return Skip()
	}

	return Notify(KindExpiry, map[string]any{
		"deadline":  deadline,
		"remaining": remaining,
	})
}

// BalanceDelta notifies when current differs from previous. A nil previous
// balance means the subject has never been observed and only seeds state.
func BalanceDelta(previous, current *big.Int) Verdict {
	if previous == nil || current == nil || previous.Cmp(current) == 0 {
		return Skip()
	}

	delta := new(big.Int).Sub(current, previous)
	return Notify(KindBalance, map[string]any{
		"previous":  new(big.Int).Set(previous),
		"current":   new(big.Int).Set(current),
		"delta":     delta,
		"increased": delta.Sign() > 0,
	})
}

// PercentMove notifies when the absolute percentage change reaches minimum.
// A minimum of zero notifies on every observation.
func PercentMove(change, minimum float64) Verdict {
	abs := change
	if abs < 0 {
		abs = -abs
	}

	if abs < minimum {
		return Skip()
	}

	return Notify(KindPriceUpdate, map[string]any{
		"change": change,
	})
}

// NewEvents returns the events strictly after cursor. A nil cursor keeps
// every event, which is the case for a first pass or an overridden range.
func NewEvents(events []ledger.Event, cursor *uint64) []ledger.Event {
	if cursor == nil {
		return events
	}

	fresh := make([]ledger.Event, 0, len(events))
	for _, e := range events {
		if e.BlockNumber > *cursor {
			fresh = append(fresh, e)
		}
	}

	return fresh
}
