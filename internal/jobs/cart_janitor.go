package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CartStore deletes abandoned cart items.
type CartStore interface {
	DeleteStaleCartItems(ctx context.Context, cutoff time.Time) (int64, error)
}

// CartJanitor periodically removes cart items older than a TTL.
type CartJanitor struct {
	store    CartStore
	log      *zap.Logger
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
}

// NewCartJanitor creates a new cart janitor.
func NewCartJanitor(store CartStore, log *zap.Logger, interval, ttl time.Duration) *CartJanitor {
	return &CartJanitor{
		store:    store,
		log:      log,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (j *CartJanitor) Start(ctx context.Context) {
	j.log.Info("cart janitor started", zap.Duration("interval", j.interval), zap.Duration("ttl", j.ttl))

	// Run immediately on start
	j.sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info("cart janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// sweep deletes every cart item added before now minus the TTL.
func (j *CartJanitor) sweep(ctx context.Context) {
	cutoff := j.now().Add(-j.ttl)
	n, err := j.store.DeleteStaleCartItems(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			j.log.Error("cart janitor: sweep failed", zap.Error(err))
		}
		return
	}
	if n > 0 {
		j.log.Info("cart janitor: removed stale cart items", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
}
