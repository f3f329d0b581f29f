package ethereum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// coerce converts the loosely typed arguments channels pass (hex strings,
// Go integers) into the types the ABI packer expects.
func coerce(inputs abi.Arguments, args []any) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(inputs), len(args))
	}

	out := make([]any, len(args))
	for i, arg := range args {
		v, err := coerceArg(inputs[i].Type, arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", inputs[i].Name, err)
		}
		out[i] = v
	}

	return out, nil
}

func coerceArg(t abi.Type, arg any) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if s, ok := arg.(string); ok {
			if !common.IsHexAddress(s) {
				return nil, fmt.Errorf("invalid address %q", s)
			}
			return common.HexToAddress(s), nil
		}

	case abi.UintTy, abi.IntTy:
		if t.Size <= 64 {
			return arg, nil
		}

		switch n := arg.(type) {
		case int:
			return big.NewInt(int64(n)), nil
		case int64:
			return big.NewInt(n), nil
		case uint64:
			return new(big.Int).SetUint64(n), nil
		case string:
			v, ok := new(big.Int).SetString(n, 0)
			if !ok {
				return nil, fmt.Errorf("invalid integer %q", n)
			}
			return v, nil
		}

	case abi.BytesTy:
		if s, ok := arg.(string); ok {
			return hexutil.Decode(s)
		}

	case abi.FixedBytesTy:
		if s, ok := arg.(string); ok && t.Size == 32 {
			return common.HexToHash(s), nil
		}
	}

	return arg, nil
}

// normalize turns decoded ABI values into plain types: addresses become
// checksummed hex strings and fixed byte arrays hex strings.
func normalize(v any) any {
	switch x := v.(type) {
	case common.Address:
		return x.Hex()
	case []common.Address:
		out := make([]string, len(x))
		for i, a := range x {
			out[i] = a.Hex()
		}
		return out
	case common.Hash:
		return x.Hex()
	case [32]byte:
		return hexutil.Encode(x[:])
	case []byte:
		return hexutil.Encode(x)
	default:
		return v
	}
}
