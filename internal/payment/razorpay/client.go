// Package razorpay covers the two touchpoints the service has with the
// payment gateway: creating an order (payment intent) and verifying the
// signed confirmation the checkout hands back.
package razorpay

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"server/internal/httpx"
)

// Options configures the gateway client.
type Options struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Transport *httpx.Client
}

// Client talks to the Razorpay REST API through the retrying transport.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	transport *httpx.Client
}

// Intent is a gateway-created payment order the frontend checkout opens.
type Intent struct {
	OrderID  string
	Amount   int64 // minor units (paise)
	Currency string
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewClient constructs a gateway client.
func NewClient(opts Options) (*Client, error) {
	keyID := strings.TrimSpace(opts.KeyID)
	keySecret := strings.TrimSpace(opts.KeySecret)
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay: key id and secret are required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	transport := opts.Transport
	if transport == nil {
		transport = httpx.NewClient(httpx.Options{})
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		transport: transport,
	}, nil
}

// KeyID returns the public key the frontend checkout needs.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateIntent creates a gateway order for the given amount in minor units.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error) {
	if amountMinor <= 0 {
		return nil, fmt.Errorf("razorpay: amount must be positive")
	}
	payload := createOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  "receipt_" + uuid.NewString(),
	}
	header := http.Header{}
	header.Set("Authorization", "Basic "+basicAuth(c.keyID, c.keySecret))

	var out createOrderResponse
	if err := c.transport.DoJSON(ctx, httpx.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + "/orders",
		Header: header,
		Body:   payload,
	}, &out); err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("razorpay create order: response missing order id")
	}
	return &Intent{OrderID: out.ID, Amount: out.Amount, Currency: out.Currency}, nil
}

func basicAuth(user, pass string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
}
