package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GatewayOrder is what the checkout frontend needs to open the payment widget.
type GatewayOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// Gateway is the payment provider surface the order workflow depends on.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// Client talks to the Razorpay REST API. Build one at startup and share it.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    "https://api.razorpay.com",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type gatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder reserves the amount with the gateway. Amount comes in major
// currency units and is converted to paise on the wire.
func (c *Client) CreateOrder(ctx context.Context, amount float64) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":          int64(amount * 100),
		"currency":        "INR",
		"receipt":         fmt.Sprintf("order_%d", time.Now().UnixMilli()),
		"payment_capture": 1,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(body))
	}

	var gatewayResp gatewayOrderResponse
	if err := json.Unmarshal(body, &gatewayResp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if gatewayResp.Error != nil {
		return nil, fmt.Errorf("payment gateway error: %s", gatewayResp.Error.Description)
	}
	if gatewayResp.ID == "" {
		return nil, fmt.Errorf("payment gateway returned empty order id")
	}

	return &GatewayOrder{
		OrderID:  gatewayResp.ID,
		Amount:   gatewayResp.Amount,
		Currency: gatewayResp.Currency,
		Key:      c.keyID,
	}, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed with the API secret, hex encoded. Client
// supplied verdicts are never trusted; this is the only check that counts.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
