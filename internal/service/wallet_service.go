package service

import (
	"context"

	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultWalletPageSize = 50

type walletService struct {
	cache    ports.WalletCache
	provider ports.ProviderClient
	log      zerolog.Logger
}

// NewWalletService creates the wallet read/adjust service. All reads go
// through the cache; the only write path is the driver wallet adjustment.
func NewWalletService(cache ports.WalletCache, provider ports.ProviderClient, log zerolog.Logger) ports.WalletService {
	return &walletService{cache: cache, provider: provider, log: log}
}

// GetDriverBalance reads one driver wallet. fresh=true forces a provider
// fetch that still repopulates the cache.
func (s *walletService) GetDriverBalance(ctx context.Context, driverID string, fresh bool) (*ports.WalletBalanceResult, error) {
	if driverID == "" {
		return nil, apperror.Validation("driver id is required")
	}

	q := domain.WalletQuery{
		EntityType: domain.WalletEntityDriver,
		EntityIDs:  []string{driverID},
	}
	return s.read(ctx, q, fresh, "driver wallet")
}

// GetBatchBalances reads customer or merchant wallets in one provider call.
// Driver wallets are excluded here on purpose: they are single-id lookups
// with their own endpoint and cache slot shape.
func (s *walletService) GetBatchBalances(ctx context.Context, entityType domain.WalletEntityType, vendorIDs []string, page, pageSize int, fresh bool) (*ports.WalletBalanceResult, error) {
	if entityType != domain.WalletEntityCustomer && entityType != domain.WalletEntityMerchant {
		return nil, apperror.Validation("entity type must be customer or merchant")
	}
	if len(vendorIDs) == 0 {
		return nil, apperror.Validation("at least one vendor id is required")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultWalletPageSize
	}

	q := domain.WalletQuery{
		EntityType: entityType,
		EntityIDs:  vendorIDs,
		Page:       page,
		PageSize:   pageSize,
	}
	return s.read(ctx, q, fresh, "wallets")
}

func (s *walletService) read(ctx context.Context, q domain.WalletQuery, fresh bool, entity string) (*ports.WalletBalanceResult, error) {
	if fresh {
		snap, err := s.cache.Bypass(ctx, q)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			return nil, apperror.ErrNotFound(entity)
		}
		return &ports.WalletBalanceResult{Snapshot: snap, Cached: false}, nil
	}

	snap, cached, err := s.cache.Get(ctx, q)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, apperror.ErrNotFound(entity)
	}
	return &ports.WalletBalanceResult{Snapshot: snap, Cached: cached}, nil
}

// AdjustDriverWallet performs the provider-side credit/debit and then
// invalidates the driver's cache slot so the next read reflects it.
func (s *walletService) AdjustDriverWallet(ctx context.Context, adj ports.DriverWalletAdjustment) error {
	if adj.DriverID == "" {
		return apperror.Validation("driver id is required")
	}
	if adj.Amount == "" {
		return apperror.Validation("amount is required")
	}
	if !adj.Type.IsValid() {
		return apperror.Validation("transaction type must be credit or debit")
	}

	if err := s.provider.AdjustDriverWallet(ctx, adj); err != nil {
		return err
	}

	q := domain.WalletQuery{
		EntityType: domain.WalletEntityDriver,
		EntityIDs:  []string{adj.DriverID},
	}
	if err := s.cache.Invalidate(ctx, q); err != nil {
		// The provider write stands; a failed invalidation only risks one
		// TTL window of staleness. Not worth failing the request over.
		s.log.Error().Err(err).Str("driver_id", adj.DriverID).Msg("wallet cache invalidation failed after adjustment")
	}

	s.log.Info().
		Str("driver_id", adj.DriverID).
		Str("type", string(adj.Type)).
		Str("amount", adj.Amount).
		Msg("driver wallet adjusted")
	return nil
}
