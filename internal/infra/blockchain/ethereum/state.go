package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type callMsg struct {
	From string        `json:"from,omitempty"`
	To   string        `json:"to"`
	Data hexutil.Bytes `json:"data"`
}

// pack encodes call into method calldata and returns the ABI used.
func (c *client) pack(call ledger.ContractCall) ([]byte, *abi.ABI, error) {
	parsed, err := c.parseABI(call.ABI)
	if err != nil {
		return nil, nil, err
	}

	method, ok := parsed.Methods[call.Method]
	if !ok {
		return nil, nil, fmt.Errorf("method %q not found in abi", call.Method)
	}

	args, err := coerce(method.Inputs, call.Args)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", call.Method, err)
	}

	data, err := parsed.Pack(call.Method, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("pack %s: %w", call.Method, err)
	}

	return data, parsed, nil
}

func (c *client) ReadState(ctx context.Context, call ledger.ContractCall) ([]any, error) {
	data, parsed, err := c.pack(call)
	if err != nil {
		return nil, err
	}

	var out hexutil.Bytes
	if err := jsonrpc.Call(ctx, c.conn, &out, "eth_call", callMsg{To: call.Address, Data: data}, "latest"); err != nil {
		return nil, classify("eth_call", err)
	}

	values, err := parsed.Unpack(call.Method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", call.Method, err)
	}

	for i, v := range values {
		values[i] = normalize(v)
	}

	return values, nil
}

func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	var bal hexutil.Big
	if err := jsonrpc.Call(ctx, c.conn, &bal, "eth_getBalance", address, "latest"); err != nil {
		return nil, classify("eth_getBalance", err)
	}

	return bal.ToInt(), nil
}
