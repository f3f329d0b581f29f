// Package ethereum implements ledger.Client for Ethereum compatible nodes
// over JSON-RPC. Contract calls and event logs are encoded and decoded with
// the go-ethereum ABI package; transactions are legacy EIP-155 transactions
// signed locally.
package ethereum

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// revertCode is the JSON-RPC error code nodes use for reverted calls.
const revertCode = 3

type client struct {
	conn jsonrpc.Client

	// abis caches parsed ABIs by their JSON text.
	abis sync.Map

	// txMu serializes nonce lookup and broadcast per client.
	txMu sync.Mutex
}

var _ ledger.Client = (*client)(nil)

// parseABI returns the parsed form of def, parsing it once.
func (c *client) parseABI(def string) (*abi.ABI, error) {
	if v, ok := c.abis.Load(def); ok {
		return v.(*abi.ABI), nil
	}

	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}

	v, _ := c.abis.LoadOrStore(def, &parsed)
	return v.(*abi.ABI), nil
}

// classify maps JSON-RPC failures onto the ledger error taxonomy.
func classify(method string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, jsonrpc.ErrTransport) {
		return fmt.Errorf("%w: %s: %w", ledger.ErrNetwork, method, err)
	}

	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) && (rpcErr.Code == revertCode || strings.Contains(strings.ToLower(rpcErr.Message), "revert")) {
		return fmt.Errorf("%w: %s: %w", ledger.ErrRevert, method, err)
	}

	return fmt.Errorf("%s: %w", method, err)
}

// NewClient creates a ledger client talking to the node behind conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
