// Package walletpool picks the signing wallet for each channel pass in
// strict round-robin order over a configured pool.
//
// The last used position is persisted per channel through IndexStorage so
// rotation survives restarts. Positions are 1-indexed: the first pass of a
// channel uses wallet 1, and after wallet N the rotation wraps to 1.
package walletpool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabapcia/chainnotify/internal/pkg/logger"
	"github.com/gabapcia/chainnotify/internal/pkg/types"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrNoWalletIndex is returned by IndexStorage when a channel has never
	// rotated. It marks a first run, not a failure.
	ErrNoWalletIndex = errors.New("no wallet index found for channel")

	// ErrEmptyPool is returned when a channel has no configured wallets.
	ErrEmptyPool = errors.New("wallet pool is empty")

	// ErrSelectionFailed wraps storage failures while rotating. The selector
	// never silently falls back to wallet 1 on a storage error.
	ErrSelectionFailed = errors.New("wallet selection failed")
)

// IndexStorage persists the last used 1-indexed pool position per channel.
type IndexStorage interface {
	LoadWalletIndex(ctx context.Context, channel string) (int, error)
	SaveWalletIndex(ctx context.Context, channel string, index int) error
}

// Wallet is the key selected for one pass.
type Wallet struct {
	// Index is the 1-indexed position in the pool.
	Index int

	// Key is the hex encoded private key used to sign transactions.
	Key string
}

// Address derives the public address of the wallet. It returns an empty
// string when the key is not a valid secp256k1 private key.
func (w Wallet) Address() string {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(w.Key, "0x"))
	if err != nil {
		return ""
	}

	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

// Selector rotates wallets.
type Selector interface {
	// Next advances the rotation for channel and returns the selected wallet.
	Next(ctx context.Context, channel string, pool []string) (Wallet, error)
}

type service struct {
	locks *types.DefaultMap[string, *sync.Mutex]

	indexStorage IndexStorage
}

var _ Selector = (*service)(nil)

// nextIndex returns the position following current in a pool of size n.
func nextIndex(current, n int) int {
	next := current + 1
	if next > n || next < 1 {
		return 1
	}

	return next
}

func (s *service) Next(ctx context.Context, channel string, pool []string) (Wallet, error) {
	if len(pool) == 0 {
		return Wallet{}, fmt.Errorf("%w: channel %s", ErrEmptyPool, channel)
	}

	lock := s.locks.Get(channel)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.indexStorage.LoadWalletIndex(ctx, channel)
	if err != nil {
		if !errors.Is(err, ErrNoWalletIndex) {
			return Wallet{}, fmt.Errorf("%w: load index: %w", ErrSelectionFailed, err)
		}

		current = 0
	}

	next := nextIndex(current, len(pool))
	if err := s.indexStorage.SaveWalletIndex(ctx, channel, next); err != nil {
		return Wallet{}, fmt.Errorf("%w: save index: %w", ErrSelectionFailed, err)
	}

	logger.Debug(ctx, "wallet selected", "wallet_index", next, "pool_size", len(pool))

	return Wallet{Index: next, Key: pool[next-1]}, nil
}

// New creates a Selector persisting its rotation in is.
func New(is IndexStorage) *service {
	return &service{
		locks: types.NewDefaultMap(func(string) *sync.Mutex {
			return new(sync.Mutex)
		}),
		indexStorage: is,
	}
}
