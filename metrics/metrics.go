package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshTotal counts refresh attempts by outcome ("live" or "fallback").
	RefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "market_intel",
		Name:      "refresh_total",
		Help:      "Snapshot refresh attempts by outcome.",
	}, []string{"outcome"})

	// SnapshotSize is the number of signals in the current snapshot.
	SnapshotSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "market_intel",
		Name:      "snapshot_size",
		Help:      "Signals in the current snapshot.",
	})

	// FallbackMode is 1 while the dashboard is serving the seed dataset.
	FallbackMode = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "market_intel",
		Name:      "fallback_mode",
		Help:      "1 when serving the embedded fallback dataset, 0 when live.",
	})
)
