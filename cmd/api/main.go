package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/httpx"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/payment/razorpay"
	"server/internal/providers/gemini"
	"server/internal/sitegen"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Orders live in Postgres when a DSN is configured, otherwise in an
	// in-memory store seeded with demo data.
	var orders domain.OrderRepository
	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()

		pg := repo.NewOrderRepository(dbpool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare orders schema")
		}
		orders = pg
	} else {
		logger.Warn().Msg("DATABASE_URL not set, using in-memory order store")
		orders = repo.NewOrderRepositoryMemory(repo.DemoOrders())
	}

	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, lead countries disabled")
	}
	if closer, ok := geo.(io.Closer); ok {
		defer closer.Close()
	}

	transport := httpx.NewClient(httpx.Options{
		Attempts:  cfg.RetryAttempts,
		BaseDelay: cfg.RetryBaseDelay,
		Logger:    &logger,
	})

	model, err := gemini.NewClient(gemini.Options{
		APIKey:    cfg.GeminiAPIKey,
		BaseURL:   cfg.GeminiBaseURL,
		Model:     cfg.GeminiModel,
		Transport: transport,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("gemini client init failed")
	}

	payments, err := razorpay.NewClient(razorpay.Options{
		KeyID:     cfg.RazorpayKeyID,
		KeySecret: cfg.RazorpayKeySecret,
		BaseURL:   cfg.RazorpayBaseURL,
		Transport: transport,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("razorpay client init failed")
	}

	app := &handlers.App{
		Logger:        logger,
		Jobs:          repo.NewJobRegistry(),
		Orders:        orders,
		Streamer:      sitegen.NewStreamer(sitegen.NewGenerator(model), logger),
		Payments:      payments,
		Geo:           geo,
		AdminPassword: cfg.AdminPassword,
		AdvanceAmount: cfg.AdvanceAmount,
		FinalAmount:   cfg.FinalAmount,
		Currency:      cfg.Currency,
		JobTimeout:    cfg.JobTimeout,
	}

	router := httpapi.NewRouter(app, httpapi.RouterOptions{
		Logger:          logger,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
