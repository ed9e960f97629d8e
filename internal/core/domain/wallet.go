package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WalletEntityType identifies whose wallet a balance belongs to.
type WalletEntityType string

const (
	WalletEntityDriver   WalletEntityType = "driver"
	WalletEntityCustomer WalletEntityType = "customer"
	WalletEntityMerchant WalletEntityType = "merchant"
)

// IsValid reports whether the entity type is one of the known wallet kinds.
func (t WalletEntityType) IsValid() bool {
	switch t {
	case WalletEntityDriver, WalletEntityCustomer, WalletEntityMerchant:
		return true
	}
	return false
}

// WalletEntity is a single wallet balance as reported by the provider.
// Balance and Pending are copied verbatim from the provider response;
// this system never computes or mutates them.
type WalletEntity struct {
	EntityType WalletEntityType `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Balance    string           `json:"balance"`
	Pending    string           `json:"pending"`
}

// WalletSource tags where wallet data originated. The only valid value is
// "provider"; there is no local ledger to source from.
const WalletSource = "provider"

// WalletSnapshot wraps one or more wallet entities fetched in a single
// provider call, with the freshness window they are valid for. Snapshots
// are replaced on refresh, never mutated in place.
type WalletSnapshot struct {
	EntityType WalletEntityType `json:"entity_type"`
	Entities   []WalletEntity   `json:"entities"`
	Source     string           `json:"source"`
	FetchedAt  time.Time        `json:"fetched_at"`
	ExpiresAt  time.Time        `json:"expires_at"`
}

// Valid reports whether the snapshot may still be served. An expired
// snapshot is logically absent: it must be refreshed or treated as a miss,
// never returned to a caller.
func (s *WalletSnapshot) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// WalletQuery identifies one wallet lookup against the provider. The same
// logical query must always derive the same cache key.
type WalletQuery struct {
	EntityType WalletEntityType
	EntityIDs  []string
	Page       int
	PageSize   int
}

// CacheKey derives the deterministic cache slot for this query. Single
// driver lookups use driver:{id}; batch lookups sort and de-duplicate the
// vendor ids and append the paging window, so two logically identical
// queries hit the same slot regardless of input ordering.
func (q WalletQuery) CacheKey() string {
	if q.EntityType == WalletEntityDriver && len(q.EntityIDs) == 1 {
		return fmt.Sprintf("driver:%s", q.EntityIDs[0])
	}

	ids := make([]string, 0, len(q.EntityIDs))
	seen := make(map[string]struct{}, len(q.EntityIDs))
	for _, id := range q.EntityIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return fmt.Sprintf("%s:%s:p%d:s%d", q.EntityType, strings.Join(ids, ","), q.Page, q.PageSize)
}

// WalletAdjustmentType is the direction of a driver wallet adjustment.
type WalletAdjustmentType string

const (
	WalletAdjustCredit WalletAdjustmentType = "credit"
	WalletAdjustDebit  WalletAdjustmentType = "debit"
)

// IsValid reports whether the adjustment type is known.
func (t WalletAdjustmentType) IsValid() bool {
	return t == WalletAdjustCredit || t == WalletAdjustDebit
}
