package ports

import (
	"context"

	"fleet-edi-gateway/internal/core/domain"
)

// ProviderClient is the single point of contact with the external
// fleet-management provider. It owns API-key attachment and response-shape
// normalization; it carries no business logic.
//
// Error contract: transport failures and unexpected provider responses are
// returned as ProviderUnavailable errors. A well-formed business rejection
// is NOT an error; CreateOrder reports it via OrderReceipt.Accepted=false.
// A job or wallet the provider does not know returns (nil, nil).
type ProviderClient interface {
	CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderReceipt, error)
	GetOrderStatus(ctx context.Context, reference string, byJobID bool) (*domain.ProviderJob, error)
	FetchWalletBalance(ctx context.Context, q domain.WalletQuery) (*domain.WalletSnapshot, error)
	// AdjustDriverWallet credits or debits a driver wallet. Customer and
	// merchant wallets are read-only in this system by policy; no write
	// operation for them exists anywhere in the public contract.
	AdjustDriverWallet(ctx context.Context, adj DriverWalletAdjustment) error
}

// DriverWalletAdjustment holds validated input for a driver wallet write.
type DriverWalletAdjustment struct {
	DriverID    string
	Amount      string
	Type        domain.WalletAdjustmentType
	Description string
}
