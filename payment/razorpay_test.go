package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	c := NewClient("rzp_test_key", "topsecret")

	good := signPayload("topsecret", "order_abc", "pay_xyz")
	assert.True(t, c.VerifySignature("order_abc", "pay_xyz", good))

	// Any drift in inputs or key fails verification.
	assert.False(t, c.VerifySignature("order_abc", "pay_xyz", "deadbeef"))
	assert.False(t, c.VerifySignature("order_other", "pay_xyz", good))
	assert.False(t, c.VerifySignature("order_abc", "pay_other", good))
	assert.False(t, c.VerifySignature("order_abc", "pay_xyz", signPayload("wrongsecret", "order_abc", "pay_xyz")))
	assert.False(t, c.VerifySignature("order_abc", "pay_xyz", ""))
}

func TestCreateOrder(t *testing.T) {
	var gotPath, gotAuthUser, gotAuthPass string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_live789",
			"amount":   25050,
			"currency": "INR",
		})
	}))
	defer srv.Close()

	c := NewClient("rzp_test_key", "topsecret")
	c.baseURL = srv.URL

	order, err := c.CreateOrder(context.Background(), 250.50)
	require.NoError(t, err)

	assert.Equal(t, "/v1/orders", gotPath)
	assert.Equal(t, "rzp_test_key", gotAuthUser)
	assert.Equal(t, "topsecret", gotAuthPass)
	assert.Equal(t, float64(25050), gotBody["amount"]) // paise on the wire
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Equal(t, float64(1), gotBody["payment_capture"])
	assert.Contains(t, gotBody["receipt"], "order_")

	assert.Equal(t, "order_live789", order.OrderID)
	assert.Equal(t, int64(25050), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.Key)
}

func TestCreateOrder_GatewayRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "BAD_REQUEST_ERROR", "description": "amount too small"},
		})
	}))
	defer srv.Close()

	c := NewClient("rzp_test_key", "topsecret")
	c.baseURL = srv.URL

	_, err := c.CreateOrder(context.Background(), 0.01)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment gateway error")
}

func TestCreateOrder_EmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"amount": 100, "currency": "INR"})
	}))
	defer srv.Close()

	c := NewClient("rzp_test_key", "topsecret")
	c.baseURL = srv.URL

	_, err := c.CreateOrder(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty order id")
}

func TestCreateOrder_Unreachable(t *testing.T) {
	c := NewClient("rzp_test_key", "topsecret")
	c.baseURL = "http://127.0.0.1:1"

	_, err := c.CreateOrder(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach payment gateway")
}
