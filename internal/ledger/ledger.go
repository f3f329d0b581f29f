// Package ledger defines the chain-facing contract used by every channel:
// reading the current height, querying event logs over a block range,
// reading contract state and submitting signed transactions.
//
// Concrete clients live under internal/infra/blockchain. Consumers declare
// the narrower interfaces they need (see scanner.LogSource and
// notify.Publisher) and accept a Client wherever those are expected.
package ledger

import (
	"context"
	"errors"
	"math/big"
	"strconv"
)

var (
	// ErrNetwork indicates the ledger endpoint could not be reached or
	// answered with a transport-level failure. Callers may retry on the next
	// pass.
	ErrNetwork = errors.New("ledger network error")

	// ErrRevert indicates the node accepted the request but the contract
	// execution reverted.
	ErrRevert = errors.New("ledger execution reverted")
)

// TxHash is the hash of a submitted transaction.
type TxHash string

// Filter selects event logs emitted by one contract.
//
// ABI is the contract ABI in JSON form and Event the name of the event
// inside it. RecipientField names the decoded argument that holds the
// address a notification for this event should be delivered to; it may be
// empty for events that are broadcast.
type Filter struct {
	Address        string `validate:"required,eth_addr"`
	ABI            string `validate:"required"`
	Event          string `validate:"required"`
	RecipientField string
}

// Event is a decoded log entry returned by QueryLogs.
type Event struct {
	Name        string
	Address     string
	BlockNumber uint64
	TxHash      string
	LogIndex    uint
	Recipient   string
	Fields      map[string]any

	// Err is set when the log matched the filter but could not be decoded.
	// Fields and Recipient are empty in that case.
	Err error
}

// ID returns an identifier that is unique per log entry on a chain.
func (e Event) ID() string {
	return e.TxHash + ":" + strconv.FormatUint(uint64(e.LogIndex), 10)
}

// ContractCall describes a method invocation on a contract, used both for
// read-only calls and for transactions.
type ContractCall struct {
	Address string `validate:"required,eth_addr"`
	ABI     string `validate:"required"`
	Method  string `validate:"required"`
	Args    []any
}

// Client is the full ledger contract.
type Client interface {
	// CurrentHeight returns the latest block number known to the node.
	CurrentHeight(ctx context.Context) (uint64, error)

	// QueryLogs returns the decoded events matching filter in the inclusive
	// range [from, to], ordered by block number and log index.
	QueryLogs(ctx context.Context, filter Filter, from, to uint64) ([]Event, error)

	// ReadState performs an eth_call style read and returns the decoded
	// method outputs in declaration order.
	ReadState(ctx context.Context, call ContractCall) ([]any, error)

	// Balance returns the native balance of address in wei.
	Balance(ctx context.Context, address string) (*big.Int, error)

	// SubmitTransaction signs call with senderKey and broadcasts it.
	SubmitTransaction(ctx context.Context, call ContractCall, senderKey string) (TxHash, error)
}
