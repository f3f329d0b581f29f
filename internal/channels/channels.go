// Package channels holds helpers shared by the bundled notification
// channels. Each channel lives in its own sub-package and implements
// runner.Channel.
package channels

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/gabapcia/chainnotify/internal/detector"
	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/runner"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ErrNoChannelAddress is returned when the selected wallet key does not
// derive a valid address to broadcast from.
var ErrNoChannelAddress = errors.New("channel address unavailable")

// ChannelAddress is the address of the pass wallet, used as the recipient of
// broadcast notifications.
func ChannelAddress(p *runner.Pass) (string, error) {
	addr := p.Wallet.Address()
	if addr == "" {
		return "", fmt.Errorf("%w: wallet %d", ErrNoChannelAddress, p.Wallet.Index)
	}

	return addr, nil
}

// ScanEvents scans filter from the channel cursor and returns the events
// strictly after it. Overridden windows are returned as scanned.
func ScanEvents(ctx context.Context, p *runner.Pass, filter ledger.Filter) ([]ledger.Event, error) {
	res, err := p.Scan(ctx, filter)
	if err != nil {
		return nil, err
	}

	if _, ok := p.Override.FromBlock(); ok {
		return res.Events, nil
	}

	return detector.NewEvents(res.Events, res.Previous), nil
}

// EventSubjects turns decoded events into one subject per event, addressed to
// the event recipient and deduplicated by txHash:logIndex. Events without a
// recipient are dropped.
func EventSubjects(events []ledger.Event) []runner.Subject {
	subjects := make([]runner.Subject, 0, len(events))
	for _, ev := range events {
		if ev.Recipient == "" {
			continue
		}

		subjects = append(subjects, runner.Subject{
			Key:       ev.ID(),
			Recipient: ev.Recipient,
			DedupKey:  ev.ID(),
			Data:      ev,
		})
	}

	return subjects
}

// FromUnits converts an integer token amount with the given decimals into a
// float. Precision loss is acceptable for display and threshold checks.
func FromUnits(v *big.Int, decimals int) float64 {
	if v == nil {
		return 0
	}

	f := new(big.Float).SetInt(v)
	f.Quo(f, new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))

	out, _ := f.Float64()
	return out
}

// FormatNumber renders f with thousands separators and precision decimals,
// e.g. 3120.551 -> "3,120.55".
func FormatNumber(f float64, precision int) string {
	return printer.Sprintf("%."+strconv.Itoa(precision)+"f", f)
}

// FormatSigned is FormatNumber with an explicit sign, e.g. "+2.10".
func FormatSigned(f float64, precision int) string {
	s := FormatNumber(f, precision)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}

	return s
}

// Days rounds a duration given in hours up to whole days.
func Days(hours float64) int {
	d := int(hours / 24)
	if float64(d)*24 < hours {
		d++
	}

	return d
}
