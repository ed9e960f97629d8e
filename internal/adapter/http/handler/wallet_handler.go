package handler

import (
	"strconv"
	"strings"
	"time"

	"fleet-edi-gateway/internal/adapter/http/dto"
	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"
	"fleet-edi-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler serves the admin wallet read and adjust endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a wallet handler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// DriverBalance returns one driver's wallet balance. fresh=true bypasses
// the cache but still repopulates it.
func (h *WalletHandler) DriverBalance(c *gin.Context) {
	driverID := c.Param("driverId")
	fresh := c.Query("fresh") == "true"

	result, err := h.walletSvc.GetDriverBalance(c.Request.Context(), driverID, fresh)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(result))
}

// BatchBalances returns customer or merchant wallet balances for a set of
// vendor ids in one provider call.
func (h *WalletHandler) BatchBalances(c *gin.Context) {
	entityType := domain.WalletEntityType(c.Param("entityType"))
	fresh := c.Query("fresh") == "true"

	ids := splitIDs(c.Query("vendor_ids"))
	if len(ids) == 0 {
		response.Error(c, apperror.Validation("vendor_ids query parameter is required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.walletSvc.GetBatchBalances(c.Request.Context(), entityType, ids, page, pageSize, fresh)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(result))
}

// AdjustDriver credits or debits a driver wallet at the provider.
func (h *WalletHandler) AdjustDriver(c *gin.Context) {
	driverID := c.Param("driverId")

	var req dto.AdjustWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.walletSvc.AdjustDriverWallet(c.Request.Context(), ports.DriverWalletAdjustment{
		DriverID:    driverID,
		Amount:      req.Amount,
		Type:        domain.WalletAdjustmentType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Wallet adjusted"})
}

func toWalletResponse(result *ports.WalletBalanceResult) dto.WalletBalanceResponse {
	snap := result.Snapshot
	wallets := make([]dto.WalletEntityResponse, 0, len(snap.Entities))
	for _, e := range snap.Entities {
		wallets = append(wallets, dto.WalletEntityResponse{
			EntityID: e.EntityID,
			Balance:  e.Balance,
			Pending:  e.Pending,
		})
	}
	return dto.WalletBalanceResponse{
		EntityType: string(snap.EntityType),
		Wallets:    wallets,
		FetchedAt:  snap.FetchedAt.Format(time.RFC3339),
		Metadata: dto.WalletMetadata{
			Source: snap.Source,
			Cached: result.Cached,
		},
	}
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
