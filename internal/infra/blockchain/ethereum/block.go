package ethereum

import (
	"context"
	"fmt"
	"sort"

	"github.com/gabapcia/chainnotify/internal/ledger"
	"github.com/gabapcia/chainnotify/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainnotify/internal/pkg/types"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// LogResponse is a log entry as returned by eth_getLogs.
type LogResponse struct {
	Address         string        `json:"address"`
	Topics          []common.Hash `json:"topics"`
	Data            hexutil.Bytes `json:"data"`
	BlockNumber     types.Hex     `json:"blockNumber"`
	TransactionHash string        `json:"transactionHash"`
	LogIndex        types.Hex     `json:"logIndex"`
	Removed         bool          `json:"removed"`
}

type logFilter struct {
	Address   string        `json:"address"`
	FromBlock types.Hex     `json:"fromBlock"`
	ToBlock   types.Hex     `json:"toBlock"`
	Topics    []common.Hash `json:"topics"`
}

func (c *client) CurrentHeight(ctx context.Context) (uint64, error) {
	var height types.Hex
	if err := jsonrpc.Call(ctx, c.conn, &height, "eth_blockNumber"); err != nil {
		return 0, classify("eth_blockNumber", err)
	}

	return height.Uint64(), nil
}

// decodeLog unpacks both the indexed and the data arguments of l.
func decodeLog(event abi.Event, l LogResponse) (map[string]any, error) {
	if len(l.Topics) == 0 || l.Topics[0] != event.ID {
		return nil, fmt.Errorf("log is not a %s event", event.Name)
	}

	fields := make(map[string]any, len(event.Inputs))
	if len(l.Data) > 0 {
		if err := event.Inputs.NonIndexed().UnpackIntoMap(fields, l.Data); err != nil {
			return nil, fmt.Errorf("unpack data: %w", err)
		}
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	if err := abi.ParseTopicsIntoMap(fields, indexed, l.Topics[1:]); err != nil {
		return nil, fmt.Errorf("unpack topics: %w", err)
	}

	for k, v := range fields {
		fields[k] = normalize(v)
	}

	return fields, nil
}

// QueryLogs fetches filter's event over [from, to]. Removed logs are
// dropped and the result is ordered by block and log index. A log that fails
// to decode is returned with Err set so the rest of the range still counts.
func (c *client) QueryLogs(ctx context.Context, filter ledger.Filter, from, to uint64) ([]ledger.Event, error) {
	parsed, err := c.parseABI(filter.ABI)
	if err != nil {
		return nil, err
	}

	event, ok := parsed.Events[filter.Event]
	if !ok {
		return nil, fmt.Errorf("event %q not found in abi", filter.Event)
	}

	var logs []LogResponse
	err = jsonrpc.Call(ctx, c.conn, &logs, "eth_getLogs", logFilter{
		Address:   filter.Address,
		FromBlock: types.HexFromUint64(from),
		ToBlock:   types.HexFromUint64(to),
		Topics:    []common.Hash{event.ID},
	})
	if err != nil {
		return nil, classify("eth_getLogs", err)
	}

	events := make([]ledger.Event, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}

		ev := ledger.Event{
			Name:        event.Name,
			Address:     l.Address,
			BlockNumber: l.BlockNumber.Uint64(),
			TxHash:      l.TransactionHash,
			LogIndex:    uint(l.LogIndex.Uint64()),
		}

		fields, err := decodeLog(event, l)
		if err != nil {
			ev.Err = fmt.Errorf("decode log %s: %w", ev.ID(), err)
			events = append(events, ev)
			continue
		}
		ev.Fields = fields

		if filter.RecipientField != "" {
			ev.Recipient, _ = fields[filter.RecipientField].(string)
		}

		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].BlockNumber != events[j].BlockNumber {
			return events[i].BlockNumber < events[j].BlockNumber
		}
		return events[i].LogIndex < events[j].LogIndex
	})

	return events, nil
}
