package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// gasMarginPercent is added on top of the node's gas estimate.
const gasMarginPercent = 20

func (c *client) chainID(ctx context.Context) (*big.Int, error) {
	var id hexutil.Big
	if err := jsonrpc.Call(ctx, c.conn, &id, "eth_chainId"); err != nil {
		return nil, classify("eth_chainId", err)
	}

	return id.ToInt(), nil
}

// SubmitTransaction signs call as a legacy EIP-155 transaction from the
// account of senderKey and broadcasts it. Nonce, gas price and gas limit
// come from the node.
func (c *client) SubmitTransaction(ctx context.Context, call ledger.ContractCall, senderKey string) (ledger.TxHash, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(senderKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid sender key: %w", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	data, _, err := c.pack(call)
	if err != nil {
		return "", err
	}

	// Nonce lookup and broadcast must not interleave for the same sender.
	c.txMu.Lock()
	defer c.txMu.Unlock()

	chainID, err := c.chainID(ctx)
	if err != nil {
		return "", err
	}

	var nonce hexutil.Uint64
	if err := jsonrpc.Call(ctx, c.conn, &nonce, "eth_getTransactionCount", from.Hex(), "pending"); err != nil {
		return "", classify("eth_getTransactionCount", err)
	}

	var gasPrice hexutil.Big
	if err := jsonrpc.Call(ctx, c.conn, &gasPrice, "eth_gasPrice"); err != nil {
		return "", classify("eth_gasPrice", err)
	}

	var gas hexutil.Uint64
	msg := callMsg{From: from.Hex(), To: call.Address, Data: data}
	if err := jsonrpc.Call(ctx, c.conn, &gas, "eth_estimateGas", msg); err != nil {
		return "", classify("eth_estimateGas", err)
	}

	to := common.HexToAddress(call.Address)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    uint64(nonce),
		GasPrice: gasPrice.ToInt(),
		Gas:      uint64(gas) * (100 + gasMarginPercent) / 100,
		To:       &to,
		Value:    new(big.Int),
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.NewEIP155Signer(chainID), key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}

	var hash common.Hash
	if err := jsonrpc.Call(ctx, c.conn, &hash, "eth_sendRawTransaction", hexutil.Encode(raw)); err != nil {
		return "", classify("eth_sendRawTransaction", err)
	}

	logger.Debug(ctx, "transaction broadcast", "from", from.Hex(), "to", call.Address, "method", call.Method, "nonce", uint64(nonce), "tx_hash", hash.Hex())
	return ledger.TxHash(hash.Hex()), nil
}
