package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// OrderRepositoryPG implements domain.OrderRepository backed by PostgreSQL.
type OrderRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new order repository backed by PostgreSQL.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepositoryPG {
	return &OrderRepositoryPG{pool: pool}
}

// EnsureSchema creates the orders table when it does not exist yet.
func (r *OrderRepositoryPG) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
    id              TEXT PRIMARY KEY,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    business_name   TEXT NOT NULL,
    business_type   TEXT NOT NULL,
    phone           TEXT NOT NULL DEFAULT '',
    email           TEXT NOT NULL DEFAULT '',
    selected_style  TEXT NOT NULL DEFAULT '',
    selected_html   TEXT NOT NULL DEFAULT '',
    payment_status  TEXT NOT NULL,
    order_status    TEXT NOT NULL,
    advance_amount  BIGINT NOT NULL DEFAULT 0,
    final_amount    BIGINT NOT NULL DEFAULT 0,
    delivery_url    TEXT NOT NULL DEFAULT '',
    payment_id      TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

// Insert stores a new order record.
func (r *OrderRepositoryPG) Insert(ctx context.Context, order *domain.Order) error {
	query := `
INSERT INTO orders (id, created_at, business_name, business_type, phone, email, selected_style, selected_html, payment_status, order_status, advance_amount, final_amount, delivery_url, payment_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.CreatedAt,
		order.BusinessName,
		order.BusinessType,
		order.Contact.Phone,
		order.Contact.Email,
		order.SelectedStyle,
		order.SelectedHTML,
		order.PaymentStatus,
		order.OrderStatus,
		order.AdvanceAmount,
		order.FinalAmount,
		order.DeliveryURL,
		order.PaymentID,
	)
	return err
}

// GetByID fetches an order by its identifier.
func (r *OrderRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, selectOrderColumns+` WHERE id = $1;`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListNewestFirst returns all orders ordered by creation time descending.
func (r *OrderRepositoryPG) ListNewestFirst(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, selectOrderColumns+` ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// Update overwrites the mutable fields of an existing order.
func (r *OrderRepositoryPG) Update(ctx context.Context, order *domain.Order) error {
	query := `
UPDATE orders
SET payment_status = $2,
    order_status = $3,
    delivery_url = $4
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query, order.ID, order.PaymentStatus, order.OrderStatus, order.DeliveryURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const selectOrderColumns = `
SELECT id, created_at, business_name, business_type, phone, email, selected_style, selected_html, payment_status, order_status, advance_amount, final_amount, delivery_url, payment_id
FROM orders`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.BusinessName,
		&order.BusinessType,
		&order.Contact.Phone,
		&order.Contact.Email,
		&order.SelectedStyle,
		&order.SelectedHTML,
		&order.PaymentStatus,
		&order.OrderStatus,
		&order.AdvanceAmount,
		&order.FinalAmount,
		&order.DeliveryURL,
		&order.PaymentID,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

var _ domain.OrderRepository = (*OrderRepositoryPG)(nil)
