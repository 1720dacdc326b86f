package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/payment/razorpay"
	"server/internal/sitegen"
)

// JobStreamer produces the event stream for one generation job.
type JobStreamer interface {
	Stream(ctx context.Context, job *domain.Job) <-chan sitegen.Event
}

// PaymentGateway is the slice of the gateway client the handlers need.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*razorpay.Intent, error)
	Verify(orderID, paymentID, signature string) bool
	KeyID() string
}

// App bundles the dependencies the HTTP handlers operate on.
type App struct {
	Logger        infra.Logger
	Jobs          domain.JobRegistry
	Orders        domain.OrderRepository
	Streamer      JobStreamer
	Payments      PaymentGateway
	Geo           geoip.CountryResolver
	AdminPassword string
	AdvanceAmount int64
	FinalAmount   int64
	Currency      string
	JobTimeout    time.Duration
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]any{"success": false, "error": msg})
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, _ *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
