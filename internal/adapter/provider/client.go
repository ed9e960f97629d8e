package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fleet-edi-gateway/config"
	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/internal/metrics"
	"fleet-edi-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Provider API endpoints.
const (
	pathCreateTask     = "/v2/create_task"
	pathJobByOrderID   = "/v2/get_job_details_by_order_id"
	pathJobByJobID     = "/v2/get_job_details"
	pathFleetWallet    = "/v1/fleets/wallet/balance"
	pathVendorWallets  = "/v2/vendors/wallet/balance"
	pathFleetWalletTxn = "/v1/fleets/wallet/transaction"
)

// In-envelope status codes used by the provider.
const (
	envStatusOK       = 200
	envStatusNotFound = 404
)

// Client implements ports.ProviderClient against the provider's HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.ProviderClient = (*Client)(nil)

// New creates a provider client from configuration.
func New(cfg config.ProviderConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    newHTTPClient(cfg.Timeout, log),
		log:     log,
	}
}

// envelope is the provider's uniform response shape. The in-envelope status
// carries the business outcome; the transport status only signals whether
// the provider answered at all.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// post sends a JSON request and decodes the provider envelope. Transport
// failures, non-2xx responses and undecodable bodies all surface as
// ProviderUnavailable, never as a business result.
func (c *Client) post(ctx context.Context, path string, payload interface{}) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal provider request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build provider request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(path, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("provider call %s: %w", path, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ProviderRequests.WithLabelValues(path, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("provider call %s: http %d", path, resp.StatusCode))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.ProviderRequests.WithLabelValues(path, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decode provider response %s: %w", path, err))
	}

	return &env, nil
}

// --- Orders ---

type createTaskRequest struct {
	APIKey            string `json:"api_key"`
	OrderID           string `json:"order_id"`
	MerchantID        int64  `json:"merchant_id"`
	JobPickupAddress  string `json:"job_pickup_address"`
	CustomerAddress   string `json:"customer_address,omitempty"`
	CustomerUsername  string `json:"customer_username,omitempty"`
	CustomerPhone     string `json:"customer_phone,omitempty"`
	JobPickupDatetime string `json:"job_pickup_datetime,omitempty"`
	HasPickup         int    `json:"has_pickup"`
	HasDelivery       int    `json:"has_delivery"`
}

type createTaskData struct {
	JobID              int64  `json:"job_id"`
	TrackingLink       string `json:"tracking_link"`
	PickupTrackingLink string `json:"pickup_tracking_link"`
}

// CreateOrder sends a job-creation request. An in-envelope rejection (e.g.
// invalid address) is returned as Accepted=false with the provider message,
// not as an error.
func (c *Client) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderReceipt, error) {
	payload := createTaskRequest{
		APIKey:            c.apiKey,
		OrderID:           sub.OrderReference,
		MerchantID:        sub.MerchantID,
		JobPickupAddress:  sub.PickupAddress,
		CustomerAddress:   sub.DeliveryAddress,
		CustomerUsername:  sub.CustomerName,
		CustomerPhone:     sub.CustomerPhone,
		JobPickupDatetime: sub.PickupDatetime,
		HasPickup:         1,
	}
	if sub.DeliveryAddress != "" {
		payload.HasDelivery = 1
	}

	env, err := c.post(ctx, pathCreateTask, payload)
	if err != nil {
		return nil, err
	}

	if env.Status != envStatusOK {
		metrics.ProviderRequests.WithLabelValues(pathCreateTask, "rejected").Inc()
		c.log.Info().
			Str("order_reference", sub.OrderReference).
			Int("provider_status", env.Status).
			Str("message", env.Message).
			Msg("provider rejected order")
		return &domain.OrderReceipt{Accepted: false, Message: env.Message}, nil
	}

	var data createTaskData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		metrics.ProviderRequests.WithLabelValues(pathCreateTask, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decode create_task data: %w", err))
	}

	metrics.ProviderRequests.WithLabelValues(pathCreateTask, "success").Inc()
	return &domain.OrderReceipt{
		Accepted:           true,
		JobID:              data.JobID,
		TrackingLink:       data.TrackingLink,
		PickupTrackingLink: data.PickupTrackingLink,
		Message:            env.Message,
	}, nil
}

type jobLookupRequest struct {
	APIKey  string `json:"api_key"`
	OrderID string `json:"order_id,omitempty"`
	JobID   string `json:"job_id,omitempty"`
}

type jobDetailsData struct {
	JobID               int64  `json:"job_id"`
	JobStatus           int    `json:"job_status"`
	TrackingLink        string `json:"tracking_link"`
	FleetID             int64  `json:"fleet_id"`
	FleetName           string `json:"fleet_name"`
	JobDeliveryDatetime string `json:"job_delivery_datetime"`
	JobType             string `json:"job_type"`
}

// GetOrderStatus fetches current job state by partner reference or provider
// job id. Returns (nil, nil) when the provider does not know the job.
func (c *Client) GetOrderStatus(ctx context.Context, reference string, byJobID bool) (*domain.ProviderJob, error) {
	path := pathJobByOrderID
	payload := jobLookupRequest{APIKey: c.apiKey, OrderID: reference}
	if byJobID {
		path = pathJobByJobID
		payload = jobLookupRequest{APIKey: c.apiKey, JobID: reference}
	}

	env, err := c.post(ctx, path, payload)
	if err != nil {
		return nil, err
	}

	switch env.Status {
	case envStatusOK:
		// decoded below
	case envStatusNotFound:
		metrics.ProviderRequests.WithLabelValues(path, "not_found").Inc()
		return nil, nil
	default:
		metrics.ProviderRequests.WithLabelValues(path, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("job lookup %s: provider status %d: %s", path, env.Status, env.Message))
	}

	var data jobDetailsData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		metrics.ProviderRequests.WithLabelValues(path, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decode job details: %w", err))
	}

	status, known := domain.JobStatusFromCode(data.JobStatus)
	if !known {
		c.log.Warn().
			Int("job_status", data.JobStatus).
			Int64("job_id", data.JobID).
			Msg("unknown provider job status code")
	}

	metrics.ProviderRequests.WithLabelValues(path, "success").Inc()
	return &domain.ProviderJob{
		JobID:               data.JobID,
		Status:              status,
		StatusCode:          data.JobStatus,
		TrackingLink:        data.TrackingLink,
		FleetID:             data.FleetID,
		FleetName:           data.FleetName,
		JobDeliveryDatetime: data.JobDeliveryDatetime,
		JobType:             data.JobType,
	}, nil
}

// --- Wallets ---

type fleetWalletRequest struct {
	APIKey  string `json:"api_key"`
	FleetID string `json:"fleet_id"`
}

type vendorWalletRequest struct {
	APIKey     string   `json:"api_key"`
	VendorType string   `json:"vendor_type"`
	VendorIDs  []string `json:"vendor_ids"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}

// walletData uses json.Number so provider amounts are copied verbatim,
// never re-parsed through floats.
type walletData struct {
	ID      string      `json:"id"`
	Balance json.Number `json:"balance"`
	Pending json.Number `json:"pending"`
}

type vendorWalletsData struct {
	Wallets []walletData `json:"wallets"`
}

// FetchWalletBalance performs a single provider wallet read, no caching.
// Returns (nil, nil) when the provider knows none of the requested wallets.
func (c *Client) FetchWalletBalance(ctx context.Context, q domain.WalletQuery) (*domain.WalletSnapshot, error) {
	if q.EntityType == domain.WalletEntityDriver && len(q.EntityIDs) == 1 {
		return c.fetchDriverWallet(ctx, q.EntityIDs[0])
	}
	return c.fetchVendorWallets(ctx, q)
}

func (c *Client) fetchDriverWallet(ctx context.Context, driverID string) (*domain.WalletSnapshot, error) {
	env, err := c.post(ctx, pathFleetWallet, fleetWalletRequest{APIKey: c.apiKey, FleetID: driverID})
	if err != nil {
		return nil, err
	}

	switch env.Status {
	case envStatusOK:
	case envStatusNotFound:
		metrics.ProviderRequests.WithLabelValues(pathFleetWallet, "not_found").Inc()
		return nil, nil
	default:
		metrics.ProviderRequests.WithLabelValues(pathFleetWallet, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("fleet wallet fetch: provider status %d: %s", env.Status, env.Message))
	}

	var data walletData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		metrics.ProviderRequests.WithLabelValues(pathFleetWallet, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decode fleet wallet: %w", err))
	}

	metrics.ProviderRequests.WithLabelValues(pathFleetWallet, "success").Inc()
	return &domain.WalletSnapshot{
		EntityType: domain.WalletEntityDriver,
		Source:     domain.WalletSource,
		Entities: []domain.WalletEntity{{
			EntityType: domain.WalletEntityDriver,
			EntityID:   driverID,
			Balance:    data.Balance.String(),
			Pending:    data.Pending.String(),
		}},
	}, nil
}

func (c *Client) fetchVendorWallets(ctx context.Context, q domain.WalletQuery) (*domain.WalletSnapshot, error) {
	env, err := c.post(ctx, pathVendorWallets, vendorWalletRequest{
		APIKey:     c.apiKey,
		VendorType: string(q.EntityType),
		VendorIDs:  q.EntityIDs,
		Page:       q.Page,
		Limit:      q.PageSize,
	})
	if err != nil {
		return nil, err
	}

	switch env.Status {
	case envStatusOK:
	case envStatusNotFound:
		metrics.ProviderRequests.WithLabelValues(pathVendorWallets, "not_found").Inc()
		return nil, nil
	default:
		metrics.ProviderRequests.WithLabelValues(pathVendorWallets, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("vendor wallet fetch: provider status %d: %s", env.Status, env.Message))
	}

	var data vendorWalletsData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		metrics.ProviderRequests.WithLabelValues(pathVendorWallets, "unavailable").Inc()
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decode vendor wallets: %w", err))
	}

	entities := make([]domain.WalletEntity, 0, len(data.Wallets))
	for _, w := range data.Wallets {
		entities = append(entities, domain.WalletEntity{
			EntityType: q.EntityType,
			EntityID:   w.ID,
			Balance:    w.Balance.String(),
			Pending:    w.Pending.String(),
		})
	}

	metrics.ProviderRequests.WithLabelValues(pathVendorWallets, "success").Inc()
	return &domain.WalletSnapshot{
		EntityType: q.EntityType,
		Source:     domain.WalletSource,
		Entities:   entities,
	}, nil
}

type fleetWalletTxnRequest struct {
	APIKey          string `json:"api_key"`
	FleetID         string `json:"fleet_id"`
	Amount          string `json:"amount"`
	TransactionType string `json:"transaction_type"`
	Description     string `json:"description,omitempty"`
}

// AdjustDriverWallet performs a credit/debit against a driver wallet. An
// in-envelope rejection (e.g. insufficient balance on debit) maps to
// ProviderRejected with the provider message.
func (c *Client) AdjustDriverWallet(ctx context.Context, adj ports.DriverWalletAdjustment) error {
	env, err := c.post(ctx, pathFleetWalletTxn, fleetWalletTxnRequest{
		APIKey:          c.apiKey,
		FleetID:         adj.DriverID,
		Amount:          adj.Amount,
		TransactionType: string(adj.Type),
		Description:     adj.Description,
	})
	if err != nil {
		return err
	}

	switch env.Status {
	case envStatusOK:
		metrics.ProviderRequests.WithLabelValues(pathFleetWalletTxn, "success").Inc()
		return nil
	case envStatusNotFound:
		metrics.ProviderRequests.WithLabelValues(pathFleetWalletTxn, "not_found").Inc()
		return apperror.ErrNotFound("driver wallet")
	default:
		metrics.ProviderRequests.WithLabelValues(pathFleetWalletTxn, "rejected").Inc()
		return apperror.ErrProviderRejected(env.Message)
	}
}
