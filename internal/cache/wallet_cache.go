package cache

import (
	"context"
	"time"

	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/internal/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// WalletCache implements ports.WalletCache: a read-through cache in front
// of provider wallet reads. Concurrent misses for the same key coalesce
// into a single provider fetch via a per-key singleflight group, so N
// simultaneous cold reads cost one upstream call and unrelated keys never
// serialize against each other.
type WalletCache struct {
	store    ports.WalletEntryStore
	provider ports.ProviderClient
	ttl      time.Duration
	group    singleflight.Group
	log      zerolog.Logger
}

var _ ports.WalletCache = (*WalletCache)(nil)

// New creates a wallet cache. ttl is assumed pre-clamped by config.Load.
func New(store ports.WalletEntryStore, provider ports.ProviderClient, ttl time.Duration, log zerolog.Logger) *WalletCache {
	return &WalletCache{
		store:    store,
		provider: provider,
		ttl:      ttl,
		log:      log,
	}
}

// Get returns a valid cached snapshot, or performs exactly one coalesced
// provider fetch and stores the result. A fetch failure propagates; an
// expired entry is logically absent and never substituted for it.
func (c *WalletCache) Get(ctx context.Context, q domain.WalletQuery) (*domain.WalletSnapshot, bool, error) {
	key := q.CacheKey()

	snap, err := c.store.Get(ctx, key)
	if err != nil {
		// A degraded entry store must not break reads; fall through to
		// the provider.
		c.log.Warn().Err(err).Str("key", key).Msg("wallet store read failed, fetching from provider")
	} else if snap != nil {
		metrics.WalletCacheReads.WithLabelValues(string(q.EntityType), "hit").Inc()
		return snap, true, nil
	}

	metrics.WalletCacheReads.WithLabelValues(string(q.EntityType), "miss").Inc()
	fresh, err := c.fetchShared(ctx, key, q)
	if err != nil {
		return nil, false, err
	}
	return fresh, false, nil
}

// Bypass performs an explicit fresh fetch; the result still populates the
// cache for subsequent reads.
func (c *WalletCache) Bypass(ctx context.Context, q domain.WalletQuery) (*domain.WalletSnapshot, error) {
	metrics.WalletCacheReads.WithLabelValues(string(q.EntityType), "bypass").Inc()
	return c.fetchShared(ctx, q.CacheKey(), q)
}

// Invalidate removes the entry and forgets any in-flight fetch for the key,
// so the next Get re-fetches even within TTL.
func (c *WalletCache) Invalidate(ctx context.Context, q domain.WalletQuery) error {
	key := q.CacheKey()
	c.group.Forget(key)
	metrics.WalletCacheInvalidations.Inc()
	return c.store.Delete(ctx, key)
}

// fetchShared runs the provider fetch under singleflight. The fetch uses a
// context detached from the caller's cancellation: it may be shared by
// other concurrent callers and must complete and populate the cache even
// if the originating request disconnects.
func (c *WalletCache) fetchShared(ctx context.Context, key string, q domain.WalletQuery) (*domain.WalletSnapshot, error) {
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		fctx := context.WithoutCancel(ctx)

		snap, err := c.provider.FetchWalletBalance(fctx, q)
		if err != nil {
			return (*domain.WalletSnapshot)(nil), err
		}
		if snap == nil {
			// Provider does not know the wallet. Not cached: a negative
			// result stored as a value would look like a valid balance.
			return (*domain.WalletSnapshot)(nil), nil
		}

		now := time.Now()
		snap.Source = domain.WalletSource
		snap.FetchedAt = now
		snap.ExpiresAt = now.Add(c.ttl)

		if err := c.store.Set(fctx, key, snap, c.ttl); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("wallet store write failed, serving uncached result")
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.WalletSnapshot), nil
}
