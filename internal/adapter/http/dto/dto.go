package dto

// CreateTokenRequest is the request body for partner token issuance.
type CreateTokenRequest struct {
	MerchantID int64  `json:"merchant_id" binding:"required,gt=0"`
	Name       string `json:"name" binding:"required,min=1,max=100"`
}

// RevokeTokenRequest is the request body for token revocation.
type RevokeTokenRequest struct {
	TokenID string `json:"token_id" binding:"required,uuid"`
}

// TokenCreatedResponse carries the one-time raw token plus metadata.
type TokenCreatedResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"` // Raw value, shown only here
	Name      string `json:"name"`
	Prefix    string `json:"prefix"`
	CreatedAt string `json:"created_at"`
}

// TokenMetadataResponse is a token listing entry. Never carries secrets.
type TokenMetadataResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Prefix    string  `json:"prefix"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
	RevokedAt *string `json:"revoked_at,omitempty"`
}

// CreateOrderRequest is the EDI order submission body. delivery_address is
// bound optionally here; the two-sided endpoint variant enforces its
// presence in the flow. merchant_id is deliberately absent; it comes from
// the authenticated token context only.
type CreateOrderRequest struct {
	OrderReference  string `json:"order_reference" binding:"required,max=100"`
	PickupAddress   string `json:"pickup_address" binding:"required"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	PickupDatetime  string `json:"pickup_datetime,omitempty"`
}

// OrderCreatedResponse is the order submission result.
type OrderCreatedResponse struct {
	JobID              int64  `json:"job_id"`
	TrackingLink       string `json:"tracking_link"`
	PickupTrackingLink string `json:"pickup_tracking_link,omitempty"`
	Message            string `json:"message,omitempty"`
}

// OrderTrackingResponse is the tracking-link oriented status shape.
type OrderTrackingResponse struct {
	Status       string `json:"status"`
	StatusCode   int    `json:"status_code"`
	JobID        int64  `json:"job_id"`
	TrackingLink string `json:"tracking_link"`
}

// OrderDetailResponse is the fleet/job-detail oriented status shape.
// Kept distinct from OrderTrackingResponse: external consumers depend on
// the exact field set of each variant.
type OrderDetailResponse struct {
	Status              string `json:"status"`
	FleetID             int64  `json:"fleet_id"`
	FleetName           string `json:"fleet_name"`
	JobStatus           int    `json:"job_status"`
	JobID               int64  `json:"job_id"`
	JobDeliveryDatetime string `json:"job_delivery_datetime"`
	JobType             string `json:"job_type"`
}

// AdjustWalletRequest is the driver wallet credit/debit body.
type AdjustWalletRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=credit debit"`
	Description string `json:"description,omitempty"`
}

// WalletMetadata is the provenance block attached to every wallet read.
type WalletMetadata struct {
	Source string `json:"source"`
	Cached bool   `json:"cached"`
}

// WalletEntityResponse is one wallet balance line.
type WalletEntityResponse struct {
	EntityID string `json:"entity_id"`
	Balance  string `json:"balance"`
	Pending  string `json:"pending"`
}

// WalletBalanceResponse is the wallet read envelope body.
type WalletBalanceResponse struct {
	EntityType string                 `json:"entity_type"`
	Wallets    []WalletEntityResponse `json:"wallets"`
	FetchedAt  string                 `json:"fetched_at"`
	Metadata   WalletMetadata         `json:"_metadata"`
}
