package handler

import (
	"fleet-edi-gateway/internal/adapter/http/dto"
	"fleet-edi-gateway/internal/adapter/http/middleware"
	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"
	"fleet-edi-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the EDI order endpoints.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// CreateDelivery submits a two-sided pickup-and-delivery order. The
// delivery address is mandatory in this variant.
func (h *OrderHandler) CreateDelivery(c *gin.Context) {
	h.create(c, true)
}

// CreatePickup submits a single-leg pickup-only order.
func (h *OrderHandler) CreatePickup(c *gin.Context) {
	h.create(c, false)
}

func (h *OrderHandler) create(c *gin.Context, requireDelivery bool) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	merchantID := c.GetInt64(middleware.CtxMerchantID)

	receipt, err := h.orderSvc.Submit(c.Request.Context(), ports.OrderSubmitRequest{
		MerchantID:      merchantID,
		OrderReference:  req.OrderReference,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		PickupDatetime:  req.PickupDatetime,
		RequireDelivery: requireDelivery,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.OrderCreatedResponse{
		JobID:              receipt.JobID,
		TrackingLink:       receipt.TrackingLink,
		PickupTrackingLink: receipt.PickupTrackingLink,
		Message:            receipt.Message,
	})
}

// Track returns the tracking-oriented status projection for an order,
// looked up by partner order reference.
func (h *OrderHandler) Track(c *gin.Context) {
	job, err := h.status(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OrderTrackingResponse{
		Status:       string(job.Status),
		StatusCode:   job.StatusCode,
		JobID:        job.JobID,
		TrackingLink: job.TrackingLink,
	})
}

// Detail returns the fleet-oriented status projection for an order.
func (h *OrderHandler) Detail(c *gin.Context) {
	job, err := h.status(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OrderDetailResponse{
		Status:              string(job.Status),
		FleetID:             job.FleetID,
		FleetName:           job.FleetName,
		JobStatus:           job.StatusCode,
		JobID:               job.JobID,
		JobDeliveryDatetime: job.JobDeliveryDatetime,
		JobType:             job.JobType,
	})
}

func (h *OrderHandler) status(c *gin.Context) (*domain.ProviderJob, error) {
	reference := c.Param("reference")
	byJobID := c.Query("by_job_id") == "true"
	return h.orderSvc.Status(c.Request.Context(), reference, byJobID)
}
