package ports

import (
	"context"
	"time"

	"fleet-edi-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService defines partner token lifecycle and authentication.
type TokenService interface {
	// Issue creates a new token bound to one merchant. The raw token value
	// is returned exactly once and never persisted.
	Issue(ctx context.Context, merchantID int64, name string) (*IssuedToken, error)
	// Revoke deactivates a token. Idempotent on already-revoked tokens.
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	// List returns token metadata for a merchant, never raw secrets.
	List(ctx context.Context, merchantID int64) ([]domain.PartnerToken, error)
	// Authenticate resolves a raw partner token to its record. Any failure
	// (malformed, unknown, revoked) yields the same authorization error.
	Authenticate(ctx context.Context, rawToken string) (*domain.PartnerToken, error)
}

// IssuedToken holds the one-time issuance result.
type IssuedToken struct {
	ID        uuid.UUID
	Token     string // Raw value, shown only at issuance
	Name      string
	Prefix    string
	CreatedAt time.Time
}

// OrderService defines the order submission and status flows.
type OrderService interface {
	// Submit validates an inbound EDI payload and forwards it to the
	// provider. A provider business rejection surfaces as a
	// ProviderRejected error carrying the provider message verbatim.
	Submit(ctx context.Context, req OrderSubmitRequest) (*domain.OrderReceipt, error)
	// Status fetches the live job state by partner reference or provider
	// job id. Never cached. Unknown references map to NotFound.
	Status(ctx context.Context, reference string, byJobID bool) (*domain.ProviderJob, error)
}

// OrderSubmitRequest holds validated input for order submission.
// MerchantID comes from the authenticated token context, never the body.
type OrderSubmitRequest struct {
	MerchantID      int64
	OrderReference  string
	PickupAddress   string
	DeliveryAddress string
	CustomerName    string
	CustomerPhone   string
	PickupDatetime  string
	// RequireDelivery selects the two-sided request shape, where a
	// delivery address is mandatory. The single-leg shape leaves it unset.
	RequireDelivery bool
}

// WalletService defines cached wallet reads and the driver wallet write.
type WalletService interface {
	GetDriverBalance(ctx context.Context, driverID string, fresh bool) (*WalletBalanceResult, error)
	GetBatchBalances(ctx context.Context, entityType domain.WalletEntityType, vendorIDs []string, page, pageSize int, fresh bool) (*WalletBalanceResult, error)
	// AdjustDriverWallet performs the provider-side credit/debit and
	// invalidates the driver's cache slot on success.
	AdjustDriverWallet(ctx context.Context, adj DriverWalletAdjustment) error
}

// WalletBalanceResult pairs a snapshot with its provenance flag.
type WalletBalanceResult struct {
	Snapshot *domain.WalletSnapshot
	Cached   bool
}

// AdminTokenVerifier validates admin JWTs issued by the internal identity
// system. The admin-role source is external configuration.
type AdminTokenVerifier interface {
	Verify(tokenString string) (*AdminClaims, error)
}

// AdminClaims holds the parsed admin JWT claims.
type AdminClaims struct {
	Subject string
	Role    string
}
