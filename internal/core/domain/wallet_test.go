package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWalletQuery_CacheKey_Driver(t *testing.T) {
	q := WalletQuery{EntityType: WalletEntityDriver, EntityIDs: []string{"d-42"}}
	assert.Equal(t, "driver:d-42", q.CacheKey())
}

func TestWalletQuery_CacheKey_OrderInsensitive(t *testing.T) {
	a := WalletQuery{
		EntityType: WalletEntityCustomer,
		EntityIDs:  []string{"c3", "c1", "c2"},
		Page:       2,
		PageSize:   10,
	}
	b := WalletQuery{
		EntityType: WalletEntityCustomer,
		EntityIDs:  []string{"c1", "c2", "c3"},
		Page:       2,
		PageSize:   10,
	}
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, "customer:c1,c2,c3:p2:s10", a.CacheKey())
}

func TestWalletQuery_CacheKey_Deduplicates(t *testing.T) {
	q := WalletQuery{
		EntityType: WalletEntityMerchant,
		EntityIDs:  []string{"m1", "m1", "m2"},
		Page:       1,
		PageSize:   50,
	}
	assert.Equal(t, "merchant:m1,m2:p1:s50", q.CacheKey())
}

func TestWalletQuery_CacheKey_PagingDistinguishes(t *testing.T) {
	p1 := WalletQuery{EntityType: WalletEntityCustomer, EntityIDs: []string{"c1"}, Page: 1, PageSize: 10}
	p2 := WalletQuery{EntityType: WalletEntityCustomer, EntityIDs: []string{"c1"}, Page: 2, PageSize: 10}
	assert.NotEqual(t, p1.CacheKey(), p2.CacheKey())
}

func TestWalletSnapshot_Valid(t *testing.T) {
	now := time.Now()
	snap := &WalletSnapshot{ExpiresAt: now.Add(time.Minute)}
	assert.True(t, snap.Valid(now))
	assert.False(t, snap.Valid(now.Add(time.Minute)))
	assert.False(t, snap.Valid(now.Add(2*time.Minute)))
}

func TestWalletEntityType_IsValid(t *testing.T) {
	assert.True(t, WalletEntityDriver.IsValid())
	assert.True(t, WalletEntityCustomer.IsValid())
	assert.True(t, WalletEntityMerchant.IsValid())
	assert.False(t, WalletEntityType("fleet").IsValid())
}

func TestWalletAdjustmentType_IsValid(t *testing.T) {
	assert.True(t, WalletAdjustCredit.IsValid())
	assert.True(t, WalletAdjustDebit.IsValid())
	assert.False(t, WalletAdjustmentType("refund").IsValid())
}
