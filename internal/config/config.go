// Package config loads process settings from the environment and channel
// definitions from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/chainnotify/internal/pkg/types"
	"github.com/gabapcia/chainnotify/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Prefix is the environment variable prefix, e.g. CHAINNOTIFY_LOG_LEVEL.
const Prefix = "CHAINNOTIFY"

// ErrDuplicateChannel is returned when the channels file defines an id twice.
var ErrDuplicateChannel = errors.New("duplicate channel id")

type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

type Storage struct {
	Driver string `envconfig:"DRIVER" default:"redis" validate:"oneof=redis sqlite"`
	Redis  Redis  `envconfig:"REDIS"`
	SQLite string `envconfig:"SQLITE_PATH" default:"chainnotify.db"`
	// DeliveryRetention is how long delivered markers are kept.
	DeliveryRetention time.Duration `envconfig:"DELIVERY_RETENTION" default:"720h" validate:"gte=1s"`
}

type RPC struct {
	// Endpoints maps network names to node URLs: "mainnet:https://...,ropsten:https://...".
	Endpoints map[string]string `envconfig:"ENDPOINTS" validate:"required,min=1,dive,keys,required,endkeys,url"`
	RateLimit float64           `envconfig:"RATE_LIMIT" default:"10" validate:"gte=0"`
	Burst     int               `envconfig:"BURST" default:"5" validate:"gte=0"`
}

type Delivery struct {
	Network     string        `envconfig:"NETWORK" default:"mainnet" validate:"required"`
	CoreAddress string        `envconfig:"CORE_ADDRESS" validate:"required,eth_addr"`
	IPFS        string        `envconfig:"IPFS_ENDPOINT" default:"http://localhost:5001" validate:"url"`
	StorageType string        `envconfig:"STORAGE_TYPE" default:"1" validate:"required"`
	Guard       bool          `envconfig:"GUARD" default:"true"`
	GuardTTL    time.Duration `envconfig:"GUARD_TTL" default:"10m"`
}

type Feeds struct {
	CoinMarketCapEndpoint string `envconfig:"CMC_ENDPOINT" default:"https://pro-api.coinmarketcap.com" validate:"url"`
	CoinMarketCapKey      string `envconfig:"CMC_API_KEY"`
	ENSSubgraph           string `envconfig:"ENS_SUBGRAPH" default:"https://api.thegraph.com/subgraphs/name/ensdomains/ens" validate:"url"`
}

// Config is the process configuration.
type Config struct {
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"chainnotify"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	HTTPAddr         string        `envconfig:"HTTP_ADDR" default:"127.0.0.1:5432" validate:"required,hostname_port"`
	ChannelsFile     string        `envconfig:"CHANNELS_FILE" default:"channels.yaml" validate:"required"`
	PassTimeout      time.Duration `envconfig:"PASS_TIMEOUT" default:"5m"`
	Concurrency      int           `envconfig:"CONCURRENCY" default:"8" validate:"gte=1"`

	Storage  Storage  `envconfig:"STORAGE"`
	RPC      RPC      `envconfig:"RPC"`
	Delivery Delivery `envconfig:"DELIVERY"`
	Feeds    Feeds    `envconfig:"FEEDS"`
}

// Channel is one entry of the channels file. Options holds the channel
// specific settings and is decoded by the channel's own constructor.
type Channel struct {
	ID       string        `yaml:"id" validate:"required"`
	Enabled  *bool         `yaml:"enabled"`
	Interval time.Duration `yaml:"interval" validate:"gt=0"`
	Network  string        `yaml:"network" validate:"required"`
	Wallets  []string      `yaml:"wallets" validate:"required,min=1,dive,required,privkey"`
	Options  yaml.Node     `yaml:"options" validate:"-"`
}

// IsEnabled reports whether the channel should be scheduled. Channels are
// enabled unless explicitly disabled.
func (c Channel) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Decode decodes the channel options into out. Missing options leave out
// untouched.
func (c Channel) Decode(out any) error {
	if c.Options.Kind == 0 {
		return nil
	}

	if err := c.Options.Decode(out); err != nil {
		return fmt.Errorf("channel %s options: %w", c.ID, err)
	}

	return nil
}

type channelsFile struct {
	Channels []Channel `yaml:"channels" validate:"dive"`
}

// Load reads the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadChannels reads the channels file at path. ${VAR} references are
// replaced with environment values before parsing, so wallet keys and API
// secrets never need to live in the file.
func LoadChannels(path string) ([]Channel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseChannels(raw)
}

// ParseChannels parses and validates a channels document.
func ParseChannels(raw []byte) ([]Channel, error) {
	var f channelsFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &f); err != nil {
		return nil, fmt.Errorf("parse channels: %w", err)
	}

	if err := validator.Validate(f); err != nil {
		return nil, err
	}

	seen := types.NewSet[string]()
	for _, ch := range f.Channels {
		if seen.Has(ch.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChannel, ch.ID)
		}
		seen.Add(ch.ID)
	}

	return f.Channels, nil
}
