package ports

import (
	"context"
	"time"

	"fleet-edi-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// PartnerTokenRepository defines persistence operations for partner tokens.
// Lookup methods return (nil, nil) when no row matches.
type PartnerTokenRepository interface {
	Create(ctx context.Context, token *domain.PartnerToken) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PartnerToken, error)
	GetByPrefix(ctx context.Context, prefix string) (*domain.PartnerToken, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]domain.PartnerToken, error)
	// Revoke marks a token inactive. Revoking an already-revoked token is a
	// no-op, keeping the operation idempotent.
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
}
