package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"orderdesk/internal/domain"
	apperrors "orderdesk/internal/errors"
)

// MemoryOrderRepository holds the order collection in-process. The id counter
// only increases; deleted ids are never reused.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	nextID int
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{nextID: 1}
}

// Seed replaces the collection and advances the counter past the highest
// seeded id.
func (r *MemoryOrderRepository) Seed(orders []domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]domain.Order(nil), orders...)
	for _, o := range orders {
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
	}
}

// List returns a snapshot copy of the collection.
func (r *MemoryOrderRepository) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Order(nil), r.orders...), nil
}

// Insert assigns the next id, derives the order code, stamps both timestamps
// to the same instant and appends the record.
func (r *MemoryOrderRepository) Insert(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	order.ID = r.nextID
	order.OrderID = domain.OrderCode(order.ID)
	order.CreatedAt = now
	order.UpdatedAt = now
	r.nextID++

	r.orders = append(r.orders, order)
	return order, nil
}

// Update applies the mutation to the stored record and refreshes updatedAt.
// The store is untouched when the id does not exist.
func (r *MemoryOrderRepository) Update(_ context.Context, id int, apply func(*domain.Order)) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			apply(&r.orders[i])
			r.orders[i].UpdatedAt = time.Now()
			return r.orders[i], nil
		}
	}
	return domain.Order{}, apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", id))
}

// Delete removes the record; no tombstone is kept.
func (r *MemoryOrderRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", id))
}
