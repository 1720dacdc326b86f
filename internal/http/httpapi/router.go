package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// RouterOptions tune the cross-cutting behavior of the API surface.
type RouterOptions struct {
	Logger          infra.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

// NewRouter mounts the public API: generation, payment, and admin routes.
func NewRouter(app *handlers.App, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.RateLimitPerMin > 0 {
				r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
			}
			r.Post("/start-generation", app.StartGeneration)
		})
		r.Get("/generation-stream/{jobID}", app.GenerationStream)

		r.Route("/payment", func(r chi.Router) {
			r.Post("/create-order", app.PaymentCreateOrder)
			r.Post("/verify-payment", app.PaymentVerify)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", app.AdminLogin)
			r.Get("/orders", app.AdminListOrders)
			r.Put("/orders/{id}", app.AdminUpdateOrder)
		})
	})

	return r
}
