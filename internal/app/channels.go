package app

import (
	"errors"
	"fmt"

	"github.com/gabapcia/chainnotify/internal/channels/aave"
	"github.com/gabapcia/chainnotify/internal/channels/ens"
	"github.com/gabapcia/chainnotify/internal/channels/ethticker"
	"github.com/gabapcia/chainnotify/internal/channels/everest"
	"github.com/gabapcia/chainnotify/internal/channels/governance"
	"github.com/gabapcia/chainnotify/internal/channels/pooltogether"
	"github.com/gabapcia/chainnotify/internal/channels/truefi"
	"github.com/gabapcia/chainnotify/internal/channels/wallettracker"
	"github.com/gabapcia/chainnotify/internal/config"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ErrUnknownChannel is returned for channel ids with no implementation.
var ErrUnknownChannel = errors.New("no implementation for channel")

// Sources are the external data sources some channels need.
type Sources struct {
	Balances wallettracker.BalanceStore
	Quotes   ethticker.QuoteSource
	Domains  ens.DomainSource
}

type factory func(def config.Channel, src Sources) (runner.Channel, error)

func decodeInto[C any](def config.Channel) (C, error) {
	var cfg C
	err := def.Decode(&cfg)
	return cfg, err
}

var factories = map[string]factory{
	aave.ID: func(def config.Channel, _ Sources) (runner.Channel, error) {
		cfg, err := decodeInto[aave.Config](def)
		if err != nil {
			return nil, err
		}
		return aave.New(cfg)
	},
	ens.ID: func(def config.Channel, src Sources) (runner.Channel, error) {
		cfg, err := decodeInto[ens.Config](def)
		if err != nil {
			return nil, err
		}
		return ens.New(cfg, src.Domains)
	},
	ethticker.ID: func(def config.Channel, src Sources) (runner.Channel, error) {
		cfg, err := decodeInto[ethticker.Config](def)
		if err != nil {
			return nil, err
		}
		return ethticker.New(cfg, src.Quotes)
	},
	everest.ID: func(def config.Channel, _ Sources) (runner.Channel, error) {
		cfg, err := decodeInto[everest.Config](def)
		if err != nil {
			return nil, err
		}
		return everest.New(cfg)
	},
	governance.ID: func(def config.Channel, _ Sources) (runner.Channel, error) {
		cfg, err := decodeInto[governance.Config](def)
		if err != nil {
			return nil, err
		}
		return governance.New(cfg)
	},
	pooltogether.ID: func(def config.Channel, _ Sources) (runner.Channel, error) {
		cfg, err := decodeInto[pooltogether.Config](def)
		if err != nil {
			return nil, err
		}
		return pooltogether.New(cfg)
	},
	truefi.ID: func(def config.Channel, _ Sources) (runner.Channel, error) {
		cfg, err := decodeInto[truefi.Config](def)
		if err != nil {
			return nil, err
		}
		return truefi.New(cfg)
	},
	wallettracker.ID: func(def config.Channel, src Sources) (runner.Channel, error) {
		cfg, err := decodeInto[wallettracker.Config](def)
		if err != nil {
			return nil, err
		}
		return wallettracker.New(cfg, src.Balances)
	},
}

// BuildChannel creates the channel implementation registered under def.ID.
func BuildChannel(def config.Channel, src Sources) (runner.Channel, error) {
	f, ok := factories[def.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, def.ID)
	}

	ch, err := f(def, src)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", def.ID, err)
	}

	return ch, nil
}
