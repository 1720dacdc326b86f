package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"server/internal/domain"
)

type createPaymentRequest struct {
	Amount int64 `json:"amount"` // major currency units
}

// PaymentCreateOrder creates a gateway payment intent for the requested
// amount and returns what the frontend checkout needs to open it.
func (a *App) PaymentCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "A positive amount is required.")
		return
	}

	intent, err := a.Payments.CreateIntent(r.Context(), req.Amount*100, a.Currency)
	if err != nil {
		a.Logger.Error().Err(err).Int64("amount", req.Amount).Msg("payment intent creation failed")
		a.error(w, http.StatusInternalServerError, "Failed to create payment order.")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"orderId":       intent.OrderID,
		"amount":        intent.Amount,
		"currency":      intent.Currency,
		"razorpayKeyId": a.Payments.KeyID(),
	})
}

type verifyPaymentRequest struct {
	OrderID   string          `json:"razorpay_order_id"`
	PaymentID string          `json:"razorpay_payment_id"`
	Signature string          `json:"razorpay_signature"`
	OrderData verifyOrderData `json:"orderData"`
}

type verifyOrderData struct {
	BusinessName  string `json:"businessName"`
	BusinessType  string `json:"businessType"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	SelectedStyle string `json:"selectedDesignStyle"`
	SelectedHTML  string `json:"selectedWebsiteHtml"`
}

// PaymentVerify checks the gateway's signed confirmation and, only on a
// match, persists the order with the advance payment recorded.
func (a *App) PaymentVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	if !a.Payments.Verify(req.OrderID, req.PaymentID, req.Signature) {
		a.Logger.Warn().Str("gateway_order_id", req.OrderID).Msg("payment signature mismatch")
		a.error(w, http.StatusBadRequest, "Payment verification failed. Signature mismatch.")
		return
	}

	order := &domain.Order{
		ID:            req.OrderID,
		CreatedAt:     time.Now().UTC(),
		BusinessName:  req.OrderData.BusinessName,
		BusinessType:  req.OrderData.BusinessType,
		Contact:       domain.Contact{Phone: req.OrderData.Phone, Email: req.OrderData.Email},
		SelectedStyle: req.OrderData.SelectedStyle,
		SelectedHTML:  req.OrderData.SelectedHTML,
		PaymentStatus: domain.PaymentStatusAdvancePaid,
		OrderStatus:   domain.OrderStatusNew,
		AdvanceAmount: a.AdvanceAmount,
		FinalAmount:   a.FinalAmount,
		PaymentID:     req.PaymentID,
	}
	if err := a.Orders.Insert(r.Context(), order); err != nil {
		a.Logger.Error().Err(err).Str("order_id", order.ID).Msg("order persistence failed")
		a.error(w, http.StatusInternalServerError, "Failed to save order.")
		return
	}

	a.Logger.Info().
		Str("order_id", order.ID).
		Str("payment_id", req.PaymentID).
		Str("business_name", order.BusinessName).
		Msg("payment verified, order created")

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Payment verified and order confirmed.",
	})
}
