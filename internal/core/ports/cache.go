package ports

import (
	"context"
	"time"

	"fleet-edi-gateway/internal/core/domain"
)

// WalletCache is the read-through cache in front of provider wallet reads.
// It is never consulted or populated for write operations.
type WalletCache interface {
	// Get returns a valid cached snapshot (cached=true), or performs
	// exactly one coalesced provider fetch, stores the result and returns
	// it (cached=false). A fetch failure propagates; an expired entry is
	// never substituted.
	Get(ctx context.Context, q domain.WalletQuery) (snap *domain.WalletSnapshot, cached bool, err error)
	// Bypass performs an explicit fresh fetch; the result still populates
	// the cache for subsequent reads.
	Bypass(ctx context.Context, q domain.WalletQuery) (*domain.WalletSnapshot, error)
	// Invalidate forces the next Get for this query to re-fetch. Called
	// after wallet-affecting writes performed by this system.
	Invalidate(ctx context.Context, q domain.WalletQuery) error
}

// WalletEntryStore persists cache entries. Get returns (nil, nil) on a miss;
// an expired entry counts as a miss, never as a value.
type WalletEntryStore interface {
	Get(ctx context.Context, key string) (*domain.WalletSnapshot, error)
	Set(ctx context.Context, key string, snap *domain.WalletSnapshot, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
