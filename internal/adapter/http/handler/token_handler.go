package handler

import (
	"strconv"
	"time"

	"fleet-edi-gateway/internal/adapter/http/dto"
	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"
	"fleet-edi-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenHandler serves the admin partner-token endpoints.
type TokenHandler struct {
	tokenSvc ports.TokenService
}

// NewTokenHandler creates a token handler.
func NewTokenHandler(tokenSvc ports.TokenService) *TokenHandler {
	return &TokenHandler{tokenSvc: tokenSvc}
}

// Create issues a new partner token. The raw token value appears in this
// response and nowhere else.
func (h *TokenHandler) Create(c *gin.Context) {
	var req dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	issued, err := h.tokenSvc.Issue(c.Request.Context(), req.MerchantID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TokenCreatedResponse{
		ID:        issued.ID.String(),
		Token:     issued.Token,
		Name:      issued.Name,
		Prefix:    issued.Prefix,
		CreatedAt: issued.CreatedAt.Format(time.RFC3339),
	})
}

// Revoke deactivates a token. Revoking an already-revoked token succeeds.
func (h *TokenHandler) Revoke(c *gin.Context) {
	var req dto.RevokeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tokenID, err := uuid.Parse(req.TokenID)
	if err != nil {
		response.Error(c, apperror.Validation("token_id must be a valid UUID"))
		return
	}

	if err := h.tokenSvc.Revoke(c.Request.Context(), tokenID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Token revoked"})
}

// List returns token metadata for one merchant.
func (h *TokenHandler) List(c *gin.Context) {
	merchantID, err := strconv.ParseInt(c.Query("merchant_id"), 10, 64)
	if err != nil || merchantID <= 0 {
		response.Error(c, apperror.Validation("merchant_id query parameter is required"))
		return
	}

	tokens, err := h.tokenSvc.List(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TokenMetadataResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, toTokenMetadata(t))
	}
	response.OK(c, out)
}

func toTokenMetadata(t domain.PartnerToken) dto.TokenMetadataResponse {
	m := dto.TokenMetadataResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Prefix:    t.Prefix,
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.RevokedAt != nil {
		revoked := t.RevokedAt.Format(time.RFC3339)
		m.RevokedAt = &revoked
	}
	return m
}
