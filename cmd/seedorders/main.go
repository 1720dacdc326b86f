// Command seedorders loads the demo orders into Postgres so a fresh
// deployment has data to show on the admin dashboard.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"server/internal/adapter/repo"
	"server/internal/infra"
)

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id              TEXT PRIMARY KEY,
	created_at      TIMESTAMPTZ NOT NULL,
	business_name   TEXT NOT NULL,
	business_type   TEXT NOT NULL,
	phone           TEXT NOT NULL DEFAULT '',
	email           TEXT NOT NULL DEFAULT '',
	selected_style  TEXT NOT NULL DEFAULT '',
	selected_html   TEXT NOT NULL DEFAULT '',
	payment_status  TEXT NOT NULL,
	order_status    TEXT NOT NULL,
	advance_amount  BIGINT NOT NULL,
	final_amount    BIGINT NOT NULL,
	delivery_url    TEXT NOT NULL DEFAULT '',
	payment_id      TEXT NOT NULL DEFAULT ''
)`

const insertOrder = `
INSERT INTO orders (
	id, created_at, business_name, business_type, phone, email,
	selected_style, selected_html, payment_status, order_status,
	advance_amount, final_amount, delivery_url, payment_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (id) DO NOTHING`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	logger := infra.NewLogger(os.Getenv("APP_ENV"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	if _, err := db.Exec(ordersSchema); err != nil {
		logger.Fatal().Err(err).Msg("create orders table")
	}

	seeded := 0
	for _, o := range repo.DemoOrders() {
		res, err := db.Exec(insertOrder,
			o.ID, o.CreatedAt, o.BusinessName, o.BusinessType,
			o.Contact.Phone, o.Contact.Email,
			o.SelectedStyle, o.SelectedHTML,
			string(o.PaymentStatus), string(o.OrderStatus),
			o.AdvanceAmount, o.FinalAmount,
			o.DeliveryURL, o.PaymentID,
		)
		if err != nil {
			logger.Fatal().Err(err).Str("order_id", o.ID).Msg("insert demo order")
		}
		if n, _ := res.RowsAffected(); n > 0 {
			seeded++
		}
	}

	logger.Info().Int("seeded", seeded).Msg("demo orders loaded")
}
