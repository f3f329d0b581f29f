package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned for values that are not 0x-prefixed unsigned
// hexadecimal quantities.
var ErrInvalidHex = errors.New("invalid hex quantity")

// Hex is a JSON-RPC quantity such as a block number or log index ("0x1f9").
type Hex string

func parseHex(s string) (uint64, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, fmt.Errorf("%w: %q lacks the 0x prefix", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}

	return v, nil
}

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if _, err := parseHex(s); err != nil {
		return "", err
	}

	return Hex(s), nil
}

// HexFromUint64 encodes n in the canonical lowercase form.
func HexFromUint64(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

// Uint64 decodes h. Malformed values decode to zero.
func (h Hex) Uint64() uint64 {
	v, _ := parseHex(string(h))
	return v
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	v, err := HexFromString(s)
	if err != nil {
		return err
	}

	*h = v
	return nil
}
