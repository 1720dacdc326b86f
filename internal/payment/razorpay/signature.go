package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the hex-encoded HMAC-SHA256 of "orderID|paymentID" with
// the gateway key secret. This is the value the checkout returns after a
// successful payment.
func Signature(keySecret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the supplied signature matches the expected
// one. The comparison is constant-time so the check leaks no timing
// information about the expected value.
func VerifySignature(keySecret, orderID, paymentID, signature string) bool {
	expected := Signature(keySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Verify checks a checkout confirmation against this client's key secret.
func (c *Client) Verify(orderID, paymentID, signature string) bool {
	return VerifySignature(c.keySecret, orderID, paymentID, signature)
}
