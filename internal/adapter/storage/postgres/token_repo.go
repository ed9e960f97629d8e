package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-edi-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.PartnerTokenRepository.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Create inserts a new partner token record.
func (r *TokenRepo) Create(ctx context.Context, t *domain.PartnerToken) error {
	query := `INSERT INTO partner_tokens (id, merchant_id, name, prefix, secret_hash, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.MerchantID, t.Name, t.Prefix, t.SecretHash, t.Active, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert partner token: %w", err)
	}
	return nil
}

// GetByID fetches a token by its UUID.
func (r *TokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PartnerToken, error) {
	query := `SELECT id, merchant_id, name, prefix, secret_hash, active, created_at, revoked_at
		FROM partner_tokens WHERE id = $1`

	t := &domain.PartnerToken{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.MerchantID, &t.Name, &t.Prefix, &t.SecretHash,
		&t.Active, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner token by id: %w", err)
	}
	return t, nil
}

// GetByPrefix fetches a token by its public prefix.
func (r *TokenRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.PartnerToken, error) {
	query := `SELECT id, merchant_id, name, prefix, secret_hash, active, created_at, revoked_at
		FROM partner_tokens WHERE prefix = $1`

	t := &domain.PartnerToken{}
	err := r.pool.QueryRow(ctx, query, prefix).Scan(
		&t.ID, &t.MerchantID, &t.Name, &t.Prefix, &t.SecretHash,
		&t.Active, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner token by prefix: %w", err)
	}
	return t, nil
}

// ListByMerchant returns all tokens for a merchant, newest first.
func (r *TokenRepo) ListByMerchant(ctx context.Context, merchantID int64) ([]domain.PartnerToken, error) {
	query := `SELECT id, merchant_id, name, prefix, secret_hash, active, created_at, revoked_at
		FROM partner_tokens WHERE merchant_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list partner tokens: %w", err)
	}
	defer rows.Close()

	var tokens []domain.PartnerToken
	for rows.Next() {
		var t domain.PartnerToken
		if err := rows.Scan(
			&t.ID, &t.MerchantID, &t.Name, &t.Prefix, &t.SecretHash,
			&t.Active, &t.CreatedAt, &t.RevokedAt,
		); err != nil {
			return nil, fmt.Errorf("scan partner token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partner tokens: %w", err)
	}
	return tokens, nil
}

// Revoke marks a token inactive. The WHERE clause skips already-revoked
// rows, so repeating the call changes nothing.
func (r *TokenRepo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE partner_tokens SET active = FALSE, revoked_at = $1
		WHERE id = $2 AND revoked_at IS NULL`

	_, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("revoke partner token: %w", err)
	}
	return nil
}
