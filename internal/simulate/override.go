// Package simulate implements the per-pass override protocol used to test a
// channel against historical ranges, alternate networks or a fixed set of
// recipients, and to run a pass without any irreversible write.
//
// An Override arrives either as a JSON boolean (true means "dry-run
// delivery, no logic changes") or as an object:
//
//	{
//	  "mode": true,
//	  "logicOverride": {
//	    "network": "ropsten",
//	    "fromBlock": 100,
//	    "toBlock": 110,
//	    "applyToAddr": ["0x..."],
//	    "addresses": {"pool": "0x..."},
//	    "simulateDelivery": true,
//	    "params": {"threshold": 1.2}
//	  }
//	}
//
// When mode is false every logic override is ignored. The parsed value is
// validated once at the boundary and then passed by value into the pass.
package simulate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/pkg/validator"
)

// ErrInvalidOverride is returned when an override cannot be decoded or
// carries inconsistent values.
var ErrInvalidOverride = errors.New("invalid simulate override")

// Logic holds the values that supersede channel defaults for one pass.
type Logic struct {
	Network          string            `json:"network,omitempty"`
	FromBlock        *uint64           `json:"fromBlock,omitempty"`
	ToBlock          *uint64           `json:"toBlock,omitempty"`
	ApplyToAddr      []string          `json:"applyToAddr,omitempty" validate:"omitempty,dive,eth_addr"`
	Addresses        map[string]string `json:"addresses,omitempty" validate:"omitempty,dive,eth_addr"`
	SimulateDelivery bool              `json:"simulateDelivery,omitempty"`
	Params           map[string]any    `json:"params,omitempty"`
}

// Override is the parsed simulate value for a single pass. The zero value
// is a live pass with no overrides.
type Override struct {
	Mode   bool  `json:"mode"`
	DryRun bool  `json:"-"`
	Logic  Logic `json:"logicOverride"`
}

// Live returns the override used by scheduled passes.
func Live() Override {
	return Override{}
}

// wireOverride is the object form accepted on the wire. The nested mode flag
// is accepted for payloads that put it inside logicOverride.
type wireOverride struct {
	Mode          *bool `json:"mode"`
	LogicOverride *struct {
		Logic
		Mode *bool `json:"mode"`
	} `json:"logicOverride"`
}

// UnmarshalJSON accepts null, a boolean or the object form.
func (o *Override) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*o = Override{}
		return nil
	case data[0] == 't' || data[0] == 'f':
		var dryRun bool
		if err := json.Unmarshal(data, &dryRun); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOverride, err)
		}

		*o = Override{DryRun: dryRun}
		return nil
	}

	var w wireOverride
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOverride, err)
	}

	var out Override
	if w.Mode != nil {
		out.Mode = *w.Mode
	}

	if w.LogicOverride != nil {
		out.Logic = w.LogicOverride.Logic
		if w.Mode == nil && w.LogicOverride.Mode != nil {
			out.Mode = *w.LogicOverride.Mode
		}
	}

	*o = out
	return nil
}

// Validate checks the override for malformed addresses and inverted ranges.
// Inactive overrides are always valid.
func (o Override) Validate() error {
	if !o.Mode {
		return nil
	}

	if err := validator.Validate(o.Logic); err != nil {
		return errors.Join(ErrInvalidOverride, err)
	}

	if o.Logic.FromBlock != nil && o.Logic.ToBlock != nil && *o.Logic.FromBlock > *o.Logic.ToBlock {
		return fmt.Errorf("%w: fromBlock %d is after toBlock %d", ErrInvalidOverride, *o.Logic.FromBlock, *o.Logic.ToBlock)
	}

	return nil
}

// Parse decodes and validates a raw simulate value.
func Parse(data []byte) (Override, error) {
	var o Override
	if err := json.Unmarshal(data, &o); err != nil {
		return Override{}, err
	}

	return o, o.Validate()
}

// DryRunDelivery reports whether content upload and transaction submission
// must be skipped.
func (o Override) DryRunDelivery() bool {
	return o.DryRun || (o.Mode && o.Logic.SimulateDelivery)
}

// FromBlock returns the overridden scan start, if any.
func (o Override) FromBlock() (uint64, bool) {
	if !o.Mode || o.Logic.FromBlock == nil {
		return 0, false
	}

	return *o.Logic.FromBlock, true
}

// ToBlock returns the overridden scan end, if any.
func (o Override) ToBlock() (uint64, bool) {
	if !o.Mode || o.Logic.ToBlock == nil {
		return 0, false
	}

	return *o.Logic.ToBlock, true
}

// Network returns the overridden network name or def.
func (o Override) Network(def string) string {
	if !o.Mode || o.Logic.Network == "" {
		return def
	}

	return o.Logic.Network
}

// Subscribers returns the overridden recipient list, if any.
func (o Override) Subscribers() ([]string, bool) {
	if !o.Mode || len(o.Logic.ApplyToAddr) == 0 {
		return nil, false
	}

	return o.Logic.ApplyToAddr, true
}

// Address returns the overridden contract address registered under name, or def.
func (o Override) Address(name, def string) string {
	if !o.Mode {
		return def
	}

	if addr, ok := o.Logic.Addresses[name]; ok && addr != "" {
		return addr
	}

	return def
}

// Param returns a channel specific override value.
func (o Override) Param(key string) (any, bool) {
	if !o.Mode {
		return nil, false
	}

	v, ok := o.Logic.Params[key]
	return v, ok
}

// Float returns a numeric channel specific override value.
func (o Override) Float(key string) (float64, bool) {
	v, ok := o.Param(key)
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	return 0, false
}

// Text returns a textual channel specific override value.
func (o Override) Text(key string) (string, bool) {
	v, ok := o.Param(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}
