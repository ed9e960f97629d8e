package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-edi-gateway/config"
	"fleet-edi-gateway/internal/core/domain"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.ProviderConfig{
		BaseURL: srv.URL,
		APIKey:  "test-api-key",
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	raw, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    json.RawMessage(raw),
	})
}

func TestClient_CreateOrder_Success(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/create_task", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, 200, "task created", map[string]interface{}{
			"job_id":               int64(555),
			"tracking_link":        "https://track/555",
			"pickup_tracking_link": "https://track/p555",
		})
	})

	receipt, err := client.CreateOrder(context.Background(), domain.OrderSubmission{
		MerchantID:      42,
		OrderReference:  "ORD-1001",
		PickupAddress:   "12 Depot Rd",
		DeliveryAddress: "99 Main St",
	})
	require.NoError(t, err)
	assert.True(t, receipt.Accepted)
	assert.Equal(t, int64(555), receipt.JobID)
	assert.Equal(t, "https://track/555", receipt.TrackingLink)
	assert.Equal(t, "https://track/p555", receipt.PickupTrackingLink)

	// Credential and leg flags are attached by the client, not the caller.
	assert.Equal(t, "test-api-key", gotBody["api_key"])
	assert.Equal(t, float64(1), gotBody["has_pickup"])
	assert.Equal(t, float64(1), gotBody["has_delivery"])
}

func TestClient_CreateOrder_SingleLegOmitsDelivery(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, 200, "ok", map[string]interface{}{"job_id": int64(1)})
	})

	_, err := client.CreateOrder(context.Background(), domain.OrderSubmission{
		MerchantID:     42,
		OrderReference: "ORD-1002",
		PickupAddress:  "12 Depot Rd",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), gotBody["has_delivery"])
}

func TestClient_CreateOrder_Rejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 100, "Pickup address could not be geocoded", nil)
	})

	receipt, err := client.CreateOrder(context.Background(), domain.OrderSubmission{
		MerchantID: 42, OrderReference: "ORD-1003", PickupAddress: "???",
	})
	// A business rejection is a result, not an error.
	require.NoError(t, err)
	assert.False(t, receipt.Accepted)
	assert.Equal(t, "Pickup address could not be geocoded", receipt.Message)
}

func TestClient_CreateOrder_TransportFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateOrder(context.Background(), domain.OrderSubmission{
		MerchantID: 42, OrderReference: "ORD-1004", PickupAddress: "12 Depot Rd",
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRV_002", appErr.Code)
}

func TestClient_CreateOrder_UndecodableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.CreateOrder(context.Background(), domain.OrderSubmission{
		MerchantID: 42, OrderReference: "ORD-1005", PickupAddress: "12 Depot Rd",
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRV_002", appErr.Code)
}

func TestClient_GetOrderStatus_MapsStatusCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/get_job_details_by_order_id", r.URL.Path)
		writeEnvelope(w, 200, "ok", map[string]interface{}{
			"job_id":        int64(555),
			"job_status":    2,
			"tracking_link": "https://track/555",
			"fleet_id":      int64(9),
			"fleet_name":    "Rita",
		})
	})

	job, err := client.GetOrderStatus(context.Background(), "ORD-1001", false)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Equal(t, 2, job.StatusCode)
	assert.Equal(t, "Rita", job.FleetName)
}

func TestClient_GetOrderStatus_ByJobIDUsesJobPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/get_job_details", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "555", body["job_id"])
		writeEnvelope(w, 200, "ok", map[string]interface{}{"job_id": int64(555), "job_status": 1})
	})

	job, err := client.GetOrderStatus(context.Background(), "555", true)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusStarted, job.Status)
}

func TestClient_GetOrderStatus_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 404, "job not found", nil)
	})

	job, err := client.GetOrderStatus(context.Background(), "ORD-MISSING", false)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestClient_GetOrderStatus_UnknownCodeMapsToUnknown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, "ok", map[string]interface{}{"job_id": int64(1), "job_status": 99})
	})

	job, err := client.GetOrderStatus(context.Background(), "ORD-1001", false)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusUnknown, job.Status)
	assert.Equal(t, 99, job.StatusCode)
}

func TestClient_FetchWalletBalance_Driver(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/fleets/wallet/balance", r.URL.Path)
		writeEnvelope(w, 200, "ok", map[string]interface{}{
			"id":      "d-1",
			"balance": json.Number("150.50"),
			"pending": json.Number("0"),
		})
	})

	snap, err := client.FetchWalletBalance(context.Background(), domain.WalletQuery{
		EntityType: domain.WalletEntityDriver,
		EntityIDs:  []string{"d-1"},
	})
	require.NoError(t, err)
	require.Len(t, snap.Entities, 1)
	// Amounts are copied verbatim, never re-parsed through floats.
	assert.Equal(t, "150.50", snap.Entities[0].Balance)
	assert.Equal(t, "0", snap.Entities[0].Pending)
}

func TestClient_FetchWalletBalance_DriverNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 404, "fleet not found", nil)
	})

	snap, err := client.FetchWalletBalance(context.Background(), domain.WalletQuery{
		EntityType: domain.WalletEntityDriver,
		EntityIDs:  []string{"d-missing"},
	})
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestClient_FetchWalletBalance_Vendors(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/vendors/wallet/balance", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, 200, "ok", map[string]interface{}{
			"wallets": []map[string]interface{}{
				{"id": "c1", "balance": json.Number("10.00"), "pending": json.Number("1.50")},
				{"id": "c2", "balance": json.Number("0"), "pending": json.Number("0")},
			},
		})
	})

	snap, err := client.FetchWalletBalance(context.Background(), domain.WalletQuery{
		EntityType: domain.WalletEntityCustomer,
		EntityIDs:  []string{"c1", "c2"},
		Page:       1,
		PageSize:   50,
	})
	require.NoError(t, err)
	require.Len(t, snap.Entities, 2)
	assert.Equal(t, "c1", snap.Entities[0].EntityID)
	assert.Equal(t, "10.00", snap.Entities[0].Balance)
	assert.Equal(t, domain.WalletEntityCustomer, snap.Entities[0].EntityType)

	assert.Equal(t, "customer", gotBody["vendor_type"])
	assert.Equal(t, float64(1), gotBody["page"])
	assert.Equal(t, float64(50), gotBody["limit"])
}

func TestClient_AdjustDriverWallet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody map[string]interface{}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/fleets/wallet/transaction", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeEnvelope(w, 200, "ok", nil)
		})

		err := client.AdjustDriverWallet(context.Background(), ports.DriverWalletAdjustment{
			DriverID: "d-1",
			Amount:   "25.00",
			Type:     domain.WalletAdjustCredit,
		})
		require.NoError(t, err)
		assert.Equal(t, "credit", gotBody["transaction_type"])
		assert.Equal(t, "25.00", gotBody["amount"])
	})

	t.Run("wallet not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, 404, "fleet not found", nil)
		})

		err := client.AdjustDriverWallet(context.Background(), ports.DriverWalletAdjustment{
			DriverID: "d-missing", Amount: "1", Type: domain.WalletAdjustDebit,
		})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NF_001", appErr.Code)
	})

	t.Run("rejection carries provider message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, 100, "insufficient balance", nil)
		})

		err := client.AdjustDriverWallet(context.Background(), ports.DriverWalletAdjustment{
			DriverID: "d-1", Amount: "9999", Type: domain.WalletAdjustDebit,
		})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "PRV_001", appErr.Code)
		assert.Equal(t, "insufficient balance", appErr.Message)
	})
}
