package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a purchasable unit with a price and stock quantity.
type Item struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// AddItemRequest carries the inputs for registering an item.
type AddItemRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity int             `json:"quantity" validate:"gte=0"`
}
