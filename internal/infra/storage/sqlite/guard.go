package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gabapcia/chainnotify/internal/runner"
)

var _ runner.DeliveryGuard = (*store)(nil)

// ClaimDelivery takes or renews an expired claim inside one transaction. A
// delivered marker past its retention counts as expired.
func (s *store) ClaimDelivery(ctx context.Context, channel, key string, ttl time.Duration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := s.now()

	var (
		done      bool
		expiresAt int64
	)
	err = tx.QueryRowContext(ctx,
		`SELECT done, expires_at FROM deliveries WHERE channel = ? AND key = ?`,
		channel, key,
	).Scan(&done, &expiresAt)

	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	case expiresAt <= now.UnixNano():
	case done:
		return runner.ErrAlreadyDelivered
	default:
		return runner.ErrDeliveryInProgress
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO deliveries (channel, key, done, expires_at) VALUES (?, ?, 0, ?)
		 ON CONFLICT (channel, key) DO UPDATE SET done = 0, expires_at = excluded.expires_at`,
		channel, key, now.Add(ttl).UnixNano(),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// MarkDelivered stores the delivered marker for the retention period and
// drops every row that has already expired.
func (s *store) MarkDelivered(ctx context.Context, channel, key string) error {
	now := s.now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deliveries (channel, key, done, expires_at) VALUES (?, ?, 1, ?)
		 ON CONFLICT (channel, key) DO UPDATE SET done = 1, expires_at = excluded.expires_at`,
		channel, key, now.Add(s.deliveryRetention).UnixNano(),
	)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM deliveries WHERE expires_at <= ?`, now.UnixNano())
	return err
}
