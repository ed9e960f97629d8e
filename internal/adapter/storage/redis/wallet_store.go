package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet-edi-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// WalletStore implements ports.WalletEntryStore using Redis. Snapshots are
// stored as JSON under a redis TTL; the expiry window is also carried inside
// the value (expires_at) and re-checked on read, so an entry that somehow
// outlives its logical TTL is still treated as absent.
type WalletStore struct {
	client *goredis.Client
	prefix string
}

// NewWalletStore creates a new Redis-backed wallet entry store.
func NewWalletStore(client *goredis.Client) *WalletStore {
	return &WalletStore{
		client: client,
		prefix: "wallet:",
	}
}

// Get retrieves a snapshot by cache key. Returns (nil, nil) when the key
// does not exist or the stored snapshot has expired.
func (s *WalletStore) Get(ctx context.Context, key string) (*domain.WalletSnapshot, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis wallet get: %w", err)
	}

	var snap domain.WalletSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal wallet snapshot: %w", err)
	}

	if !snap.Valid(time.Now()) {
		// Expired value is logically absent. Drop it so the next read
		// does not pay the deserialization cost again.
		s.client.Del(ctx, s.prefix+key)
		return nil, nil
	}

	return &snap, nil
}

// Set stores a snapshot under the cache key with TTL.
func (s *WalletStore) Set(ctx context.Context, key string, snap *domain.WalletSnapshot, ttl time.Duration) error {
	val, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal wallet snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis wallet set: %w", err)
	}
	return nil
}

// Delete removes a snapshot. Deleting a missing key is not an error.
func (s *WalletStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis wallet del: %w", err)
	}
	return nil
}
