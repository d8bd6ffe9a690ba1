package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusRejected  OrderStatus = "rejected"
)

// Order records a requested purchase of Quantity units of one Item by one
// Account. Total is snapshotted when the order is created and is never
// renegotiated. Account and Item are shared references into the ledger's
// registries; the order does not own them.
type Order struct {
	ID          int64           `json:"id"`
	Reference   uuid.UUID       `json:"reference"`
	Account     *Account        `json:"account"`
	Item        *Item           `json:"item"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}
