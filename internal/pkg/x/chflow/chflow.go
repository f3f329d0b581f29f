// Package chflow holds channel helpers that give up as soon as their
// context is done.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value on ch. ok is false when ctx ended first or ch
// was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (v T, ok bool) {
	select {
	case <-ctx.Done():
		return v, false
	case v, ok = <-ch:
		return v, ok
	}
}

// Every calls fn each time interval elapses until ctx is done. With
// immediate set, fn also runs once before the first tick. Calls never
// overlap; ticks missed while fn runs are dropped.
func Every(ctx context.Context, interval time.Duration, immediate bool, fn func(context.Context)) {
	if immediate && ctx.Err() == nil {
		fn(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, ok := Receive(ctx, ticker.C); !ok {
			return
		}
		fn(ctx)
	}
}
