package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"server/internal/httpx"
)

func TestVerifySignatureAcceptsOnlyMatchingHMAC(t *testing.T) {
	secret := "test_secret"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("o1|p1"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !VerifySignature(secret, "o1", "p1", valid) {
		t.Fatalf("valid signature rejected")
	}
	if VerifySignature(secret, "o1", "p1", valid[:len(valid)-1]+"0") {
		t.Fatalf("tampered signature accepted")
	}
	if VerifySignature(secret, "o1", "p2", valid) {
		t.Fatalf("signature for different payment accepted")
	}
	if VerifySignature("other_secret", "o1", "p1", valid) {
		t.Fatalf("signature with wrong secret accepted")
	}
	if VerifySignature(secret, "o1", "p1", "") {
		t.Fatalf("empty signature accepted")
	}
}

type orderTransport struct {
	status   int
	body     string
	lastAuth string
	lastBody []byte
}

func (o *orderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	o.lastAuth = req.Header.Get("Authorization")
	if req.Body != nil {
		o.lastBody, _ = io.ReadAll(req.Body)
	}
	return &http.Response{
		StatusCode: o.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(o.body)),
		Request:    req,
	}, nil
}

func TestCreateIntent(t *testing.T) {
	transport := &orderTransport{
		status: 200,
		body:   `{"id":"order_abc","amount":19900,"currency":"INR","status":"created"}`,
	}
	client, err := NewClient(Options{
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		Transport: httpx.NewClient(httpx.Options{HTTPClient: &http.Client{Transport: transport}, Attempts: 1}),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	intent, err := client.CreateIntent(context.Background(), 19900, "INR")
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if intent.OrderID != "order_abc" || intent.Amount != 19900 || intent.Currency != "INR" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
	if !strings.HasPrefix(transport.lastAuth, "Basic ") {
		t.Fatalf("missing basic auth header: %q", transport.lastAuth)
	}

	var payload createOrderRequest
	if err := json.Unmarshal(transport.lastBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Amount != 19900 || payload.Currency != "INR" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if !strings.HasPrefix(payload.Receipt, "receipt_") {
		t.Fatalf("receipt should be generated: %q", payload.Receipt)
	}
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	client, err := NewClient(Options{KeyID: "k", KeySecret: "s"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.CreateIntent(context.Background(), 0, "INR"); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
