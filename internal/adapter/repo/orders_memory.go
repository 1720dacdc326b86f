package repo

import (
	"context"
	"sort"
	"sync"

	"server/internal/domain"
)

// OrderRepositoryMemory implements domain.OrderRepository in process memory.
// It backs local development and tests; production deployments use the
// Postgres repository behind the same interface.
type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewOrderRepositoryMemory creates an in-memory order repository with the
// provided seed orders.
func NewOrderRepositoryMemory(seed []domain.Order) *OrderRepositoryMemory {
	r := &OrderRepositoryMemory{orders: make(map[string]*domain.Order, len(seed))}
	for i := range seed {
		order := seed[i]
		r.orders[order.ID] = &order
	}
	return r
}

func (r *OrderRepositoryMemory) Insert(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *OrderRepositoryMemory) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *OrderRepositoryMemory) ListNewestFirst(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, *order)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *OrderRepositoryMemory) Update(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

var _ domain.OrderRepository = (*OrderRepositoryMemory)(nil)
