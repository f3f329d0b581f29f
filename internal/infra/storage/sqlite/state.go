package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/chainnotify/internal/channels/wallettracker"
	"github.com/gabapcia/chainnotify/internal/scanner"
	"github.com/gabapcia/chainnotify/internal/subscriber"
	"github.com/gabapcia/chainnotify/internal/walletpool"
)

var (
	_ scanner.CursorStorage      = (*store)(nil)
	_ walletpool.IndexStorage    = (*store)(nil)
	_ subscriber.Storage         = (*store)(nil)
	_ wallettracker.BalanceStore = (*store)(nil)
)

func (s *store) SaveCursor(ctx context.Context, channel string, height uint64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cursors (channel, height) VALUES (?, ?)
		 ON CONFLICT (channel) DO UPDATE SET height = excluded.height`,
		channel, int64(height),
	)
	return err
}

func (s *store) LoadCursor(ctx context.Context, channel string) (uint64, error) {
	var height int64
	err := s.db.QueryRowContext(ctx, `SELECT height FROM cursors WHERE channel = ?`, channel).Scan(&height)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, scanner.ErrNoCursorFound
	}

	return uint64(height), err
}

func (s *store) LoadWalletIndex(ctx context.Context, channel string) (int, error) {
	var idx int
	err := s.db.QueryRowContext(ctx, `SELECT idx FROM wallet_indexes WHERE channel = ?`, channel).Scan(&idx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, walletpool.ErrNoWalletIndex
	}

	return idx, err
}

func (s *store) SaveWalletIndex(ctx context.Context, channel string, index int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wallet_indexes (channel, idx) VALUES (?, ?)
		 ON CONFLICT (channel) DO UPDATE SET idx = excluded.idx`,
		channel, index,
	)
	return err
}

func (s *store) AddSubscription(ctx context.Context, id subscriber.Subscription) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO subscriptions (channel, address) VALUES (?, ?)`,
		id.Channel, id.Address,
	)
	return err
}

func (s *store) RemoveSubscription(ctx context.Context, id subscriber.Subscription) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM subscriptions WHERE channel = ? AND address = ?`,
		id.Channel, id.Address,
	)
	return err
}

func (s *store) ListSubscriptions(ctx context.Context, channel string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT address FROM subscriptions WHERE channel = ? ORDER BY address`,
		channel,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, err
		}
		out = append(out, addr)
	}

	return out, rows.Err()
}

func (s *store) LoadBalance(ctx context.Context, channel, address, asset string) (*big.Int, error) {
	var val string
	err := s.db.QueryRowContext(ctx,
		`SELECT amount FROM balances WHERE channel = ? AND address = ? AND asset = ?`,
		channel, strings.ToLower(address), asset,
	).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wallettracker.ErrNoBalance
	}
	if err != nil {
		return nil, err
	}

	amount, ok := new(big.Int).SetString(val, 10)
	if !ok {
		return nil, fmt.Errorf("malformed cached balance %q", val)
	}

	return amount, nil
}

func (s *store) SaveBalance(ctx context.Context, channel, address, asset string, amount *big.Int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO balances (channel, address, asset, amount) VALUES (?, ?, ?, ?)
		 ON CONFLICT (channel, address, asset) DO UPDATE SET amount = excluded.amount`,
		channel, strings.ToLower(address), asset, amount.String(),
	)
	return err
}
