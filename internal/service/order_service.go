package service

import (
	"context"
	"fmt"

	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

type orderService struct {
	provider ports.ProviderClient
	log      zerolog.Logger
}

// NewOrderService creates the order submission/status service.
func NewOrderService(provider ports.ProviderClient, log zerolog.Logger) ports.OrderService {
	return &orderService{provider: provider, log: log}
}

// Submit validates the inbound payload and forwards it to the provider.
// Duplicate protection for order_reference is delegated to the provider,
// which treats it as idempotent; every forwarded submission is logged so
// duplicates remain observable.
func (s *orderService) Submit(ctx context.Context, req ports.OrderSubmitRequest) (*domain.OrderReceipt, error) {
	if req.OrderReference == "" {
		return nil, apperror.Validation("order_reference is required")
	}
	if req.PickupAddress == "" {
		return nil, apperror.Validation("pickup_address is required")
	}
	if req.RequireDelivery && req.DeliveryAddress == "" {
		return nil, apperror.Validation("delivery_address is required")
	}
	if req.MerchantID <= 0 {
		// The auth middleware attaches the merchant; reaching this point
		// without one is a wiring fault, not a caller error.
		return nil, apperror.InternalError(fmt.Errorf("order submit without merchant context"))
	}

	receipt, err := s.provider.CreateOrder(ctx, domain.OrderSubmission{
		MerchantID:      req.MerchantID,
		OrderReference:  req.OrderReference,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		PickupDatetime:  req.PickupDatetime,
	})
	if err != nil {
		return nil, err
	}

	if !receipt.Accepted {
		return nil, apperror.ErrProviderRejected(receipt.Message)
	}

	s.log.Info().
		Int64("merchant_id", req.MerchantID).
		Str("order_reference", req.OrderReference).
		Int64("job_id", receipt.JobID).
		Msg("order forwarded to provider")

	return receipt, nil
}

// Status fetches live job state by partner reference or provider job id.
// Always a fresh provider call; status changes too often to cache.
func (s *orderService) Status(ctx context.Context, reference string, byJobID bool) (*domain.ProviderJob, error) {
	if reference == "" {
		return nil, apperror.Validation("order reference is required")
	}

	job, err := s.provider.GetOrderStatus(ctx, reference, byJobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.ErrNotFound("order")
	}
	return job, nil
}
