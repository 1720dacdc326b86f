package domain

import (
	"strings"
	"time"
)

// PaymentStatus enumerates how much of the order value has been collected.
type PaymentStatus string

const (
	PaymentStatusAdvancePaid PaymentStatus = "advance_paid"
	PaymentStatusFullPaid    PaymentStatus = "full_paid"
)

// OrderStatus enumerates fulfillment progress.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusContacted OrderStatus = "contacted"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Contact holds how the customer can be reached.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Order is a paying customer's chosen design and its fulfillment state. The
// ID is the payment gateway's order id.
type Order struct {
	ID            string        `json:"_id"`
	CreatedAt     time.Time     `json:"createdAt"`
	BusinessName  string        `json:"businessName"`
	BusinessType  string        `json:"businessType"`
	Contact       Contact       `json:"userId"`
	SelectedStyle string        `json:"selectedDesignStyle"`
	SelectedHTML  string        `json:"selectedWebsiteHtml"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	AdvanceAmount int64         `json:"advanceAmount"`
	FinalAmount   int64         `json:"finalAmount"`
	DeliveryURL   string        `json:"deliveryUrl"`
	PaymentID     string        `json:"razorpay_payment_id,omitempty"`
}

// OrderUpdate carries the fields an administrator may change.
type OrderUpdate struct {
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	DeliveryURL   string        `json:"deliveryUrl"`
}

// ApplyUpdate mutates the order with the administrator's changes. A non-empty
// delivery URL that differs from the stored one force-sets the order status
// to delivered regardless of the requested status.
func (o *Order) ApplyUpdate(u OrderUpdate) {
	if u.OrderStatus != "" {
		o.OrderStatus = u.OrderStatus
	}
	if u.PaymentStatus != "" {
		o.PaymentStatus = u.PaymentStatus
	}
	url := strings.TrimSpace(u.DeliveryURL)
	if url != "" && url != o.DeliveryURL {
		o.DeliveryURL = url
		o.OrderStatus = OrderStatusDelivered
	}
}
