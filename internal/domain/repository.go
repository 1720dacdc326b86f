package domain

import "context"

// JobRegistry tracks in-flight generation jobs by identifier. Lookups must be
// O(1) and safe under concurrent access; the stream that consumes a job is
// solely responsible for deleting it.
type JobRegistry interface {
	Create(ctx context.Context, businessName, businessType, country string) (*Job, error)
	Get(ctx context.Context, id string) (*Job, error)
	Delete(ctx context.Context, id string)
}

// OrderRepository persists customer orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// ListNewestFirst returns all orders ordered by creation time descending.
	ListNewestFirst(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, order *Order) error
}
