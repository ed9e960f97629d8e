package service

import (
	"context"
	"fmt"
	"time"

	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	tokenPrefixBytes = 4  // 8 hex chars, public
	tokenSecretBytes = 16 // 32 hex chars, shown once
)

type tokenService struct {
	repo ports.PartnerTokenRepository
	log  zerolog.Logger
}

// NewTokenService creates the partner token service.
func NewTokenService(repo ports.PartnerTokenRepository, log zerolog.Logger) ports.TokenService {
	return &tokenService{repo: repo, log: log}
}

// Issue creates a new token for a merchant. Only the prefix and the
// argon2id hash of the secret are persisted; the raw value is returned
// exactly once.
func (s *tokenService) Issue(ctx context.Context, merchantID int64, name string) (*ports.IssuedToken, error) {
	if merchantID <= 0 {
		return nil, apperror.Validation("merchant_id is required")
	}
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	prefix, err := randomHex(tokenPrefixBytes)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token prefix: %w", err))
	}
	secret, err := randomHex(tokenSecretBytes)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token secret: %w", err))
	}
	secretHash, err := hashSecret(secret)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash token secret: %w", err))
	}

	token := &domain.PartnerToken{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Name:       name,
		Prefix:     prefix,
		SecretHash: secretHash,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, token); err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Str("token_id", token.ID.String()).
		Int64("merchant_id", merchantID).
		Str("prefix", prefix).
		Msg("partner token issued")

	return &ports.IssuedToken{
		ID:        token.ID,
		Token:     domain.FormatRawToken(prefix, secret),
		Name:      name,
		Prefix:    prefix,
		CreatedAt: token.CreatedAt,
	}, nil
}

// Revoke deactivates a token. Revoking an already-revoked token succeeds
// without touching the row.
func (s *tokenService) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	token, err := s.repo.GetByID(ctx, tokenID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if token == nil {
		return apperror.ErrNotFound("token")
	}
	if !token.IsActive() {
		return nil
	}

	if err := s.repo.Revoke(ctx, tokenID, time.Now().UTC()); err != nil {
		return apperror.InternalError(err)
	}

	s.log.Info().
		Str("token_id", tokenID.String()).
		Int64("merchant_id", token.MerchantID).
		Msg("partner token revoked")
	return nil
}

// List returns token metadata for a merchant. Secret hashes stay out of
// the JSON shape via the domain struct's tags.
func (s *tokenService) List(ctx context.Context, merchantID int64) ([]domain.PartnerToken, error) {
	if merchantID <= 0 {
		return nil, apperror.Validation("merchant_id is required")
	}
	tokens, err := s.repo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return tokens, nil
}

// Authenticate resolves a raw partner token. Malformed, unknown, mismatched
// and revoked tokens all yield the same error so callers cannot probe which
// prefixes exist.
func (s *tokenService) Authenticate(ctx context.Context, rawToken string) (*domain.PartnerToken, error) {
	prefix, secret, err := domain.SplitRawToken(rawToken)
	if err != nil {
		return nil, apperror.ErrInvalidPartnerToken()
	}

	token, err := s.repo.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if token == nil {
		return nil, apperror.ErrInvalidPartnerToken()
	}

	ok, err := verifySecret(secret, token.SecretHash)
	if err != nil || !ok {
		return nil, apperror.ErrInvalidPartnerToken()
	}
	if !token.IsActive() {
		return nil, apperror.ErrInvalidPartnerToken()
	}

	return token, nil
}
