// Package metrics declares the Prometheus collectors exported on /metrics.
// Every collector is partitioned by channel id.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Runner
	PassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainnotify",
		Subsystem: "runner",
		Name:      "passes_total",
		Help:      "Total channel passes by final status",
	}, []string{"channel", "status"})

	PassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainnotify",
		Subsystem: "runner",
		Name:      "pass_duration_seconds",
		Help:      "Channel pass duration",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"channel"})

	ItemFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainnotify",
		Subsystem: "runner",
		Name:      "item_failures_total",
		Help:      "Total per-subject failures isolated inside a pass",
	}, []string{"channel", "stage"})

	// Dispatcher
	DispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainnotify",
		Subsystem: "dispatcher",
		Name:      "dispatches_total",
		Help:      "Total notification dispatches by result (sent, simulated, failed)",
	}, []string{"channel", "result"})

	// Scanner
	ScannedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainnotify",
		Subsystem: "scanner",
		Name:      "blocks_scanned_total",
		Help:      "Total blocks covered by successful log scans",
	}, []string{"channel"})

	CursorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainnotify",
		Subsystem: "scanner",
		Name:      "cursor_height",
		Help:      "Last committed block cursor",
	}, []string{"channel"})
)
