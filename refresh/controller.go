// Package refresh owns all writes to the signal store: an immediate
// refresh at startup, a fixed-interval loop, and manual triggers. A
// refresh either installs a live snapshot or substitutes the embedded
// fallback dataset — it never leaves the store without displayable data.
package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/rashed-commits/uae-market-intel/metrics"
	"github.com/rashed-commits/uae-market-intel/models"
	"github.com/rashed-commits/uae-market-intel/store"
)

// ErrRefreshInFlight is returned to a manual trigger while another
// refresh is still pending. The caller re-enables its control and may
// retry once the pending refresh settles.
var ErrRefreshInFlight = errors.New("refresh already in flight")

const DefaultInterval = 5 * time.Minute

type Controller struct {
	store    *store.Store
	fetcher  Fetcher
	fallback []models.Signal
	interval time.Duration
	log      zerolog.Logger

	inFlight atomic.Bool
}

func NewController(s *store.Store, fetcher Fetcher, fallback []models.Signal, interval time.Duration, log zerolog.Logger) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		store:    s,
		fetcher:  fetcher,
		fallback: fallback,
		interval: interval,
		log:      log,
	}
}

// Refresh performs one fetch-and-replace cycle. On any fetch failure the
// store receives the fallback dataset instead; the degraded state is
// visible through the store mode, not an error. Only an overlapping
// trigger produces an error.
func (c *Controller) Refresh(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer c.inFlight.Store(false)

	signals, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Int("fallback_size", len(c.fallback)).Msg("feed unavailable, installing fallback dataset")
		c.store.Replace(c.fallback, store.ModeFallback)
		metrics.RefreshTotal.WithLabelValues("fallback").Inc()
		metrics.FallbackMode.Set(1)
		metrics.SnapshotSize.Set(float64(len(c.fallback)))
		return nil
	}

	c.store.Replace(signals, store.ModeLive)
	metrics.RefreshTotal.WithLabelValues("live").Inc()
	metrics.FallbackMode.Set(0)
	metrics.SnapshotSize.Set(float64(len(signals)))
	c.log.Info().Int("signals", len(signals)).Msg("snapshot refreshed")
	return nil
}

// Run refreshes once immediately, then on every tick until ctx is
// cancelled. A tick that lands while a refresh is still in flight is
// skipped; the next tick picks up fresh data anyway.
func (c *Controller) Run(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		c.log.Error().Err(err).Msg("initial refresh failed")
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("refresh loop stopped")
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); errors.Is(err, ErrRefreshInFlight) {
				c.log.Debug().Msg("skipping tick, refresh in flight")
			}
		}
	}
}
