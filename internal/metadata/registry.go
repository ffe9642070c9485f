package metadata

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Registry publishes the current catalog snapshot to concurrent readers.
// Updates replace the whole snapshot atomically, so an in-flight conversion
// never observes a partially refreshed catalog.
type Registry struct {
	snapshot atomic.Pointer[Catalog]
}

// NewRegistry creates a registry publishing the given initial snapshot.
func NewRegistry(initial *Catalog) *Registry {
	r := &Registry{}
	r.snapshot.Store(initial)
	return r
}

// Current returns the current catalog snapshot. The returned catalog is
// read-only; a later Swap does not affect it.
func (r *Registry) Current() *Catalog {
	return r.snapshot.Load()
}

// Swap atomically publishes a new catalog snapshot.
func (r *Registry) Swap(c *Catalog) {
	r.snapshot.Store(c)
}

// Refresh reloads the catalog through the given load function and publishes
// the result. The previous snapshot stays published when loading fails.
func (r *Registry) Refresh(ctx context.Context, load func(context.Context) (*Catalog, error)) error {
	c, err := load(ctx)
	if err != nil {
		return err
	}
	r.Swap(c)
	return nil
}

// RunRefresh refreshes the catalog on the given interval until the context
// is cancelled. Load failures are logged and the previous snapshot is kept.
func (r *Registry) RunRefresh(ctx context.Context, interval time.Duration,
	load func(context.Context) (*Catalog, error), logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx, load); err != nil {
				logger.Warn("metadata refresh failed, keeping previous snapshot",
					zap.Error(err))
				continue
			}
			logger.Info("metadata snapshot refreshed")
		}
	}
}
