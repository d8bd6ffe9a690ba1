package services

import (
	"fmt"

	"github.com/quickmart/ledger/internal/models"
)

// OrderLog owns every order the ledger has created, in creation order. It
// references the accounts and items of its orders but does not own them.
// The ledger's lock covers all access; OrderLog itself is not synchronized.
type OrderLog struct {
	orders []*models.Order
	byID   map[int64]*models.Order
}

func NewOrderLog() *OrderLog {
	return &OrderLog{
		byID: make(map[int64]*models.Order),
	}
}

func (l *OrderLog) Append(order *models.Order) {
	l.orders = append(l.orders, order)
	l.byID[order.ID] = order
}

func (l *OrderLog) Get(id int64) (*models.Order, error) {
	order, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	return order, nil
}

// Orders returns the log in creation order. The slice is a copy so callers
// cannot reorder the log itself.
func (l *OrderLog) Orders() []*models.Order {
	out := make([]*models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *OrderLog) Len() int {
	return len(l.orders)
}
