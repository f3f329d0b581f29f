// Package sqlite is the embedded alternative to the Redis storage. It keeps
// the same state in a single SQLite file and is meant for single-process
// deployments and local runs.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DefaultDeliveryRetention is how long a delivered marker is kept.
const DefaultDeliveryRetention = 30 * 24 * time.Hour

type store struct {
	db                *sql.DB
	now               func() time.Time
	deliveryRetention time.Duration
}

// Option configures the store.
type Option func(*store)

// WithDeliveryRetention sets how long delivered markers are kept. Values
// below one second are ignored.
func WithDeliveryRetention(d time.Duration) Option {
	return func(s *store) {
		if d >= time.Second {
			s.deliveryRetention = d
		}
	}
}

// Open creates or opens the database at path and applies the schema.
func Open(ctx context.Context, path string, opts ...Option) (*store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One writer at a time avoids SQLITE_BUSY under concurrent passes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &store{db: db, now: time.Now, deliveryRetention: DefaultDeliveryRetention}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
