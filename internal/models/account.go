package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNegativeBalance is returned when a balance assignment would leave the
// account below zero.
var ErrNegativeBalance = errors.New("balance cannot be negative")

// Account is a purchaser with a spendable balance.
type Account struct {
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// SetBalance replaces the account balance. A negative assignment is refused
// and the previous balance is kept.
func (a *Account) SetBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrNegativeBalance
	}
	a.Balance = balance
	return nil
}

// AddAccountRequest carries the inputs for registering an account.
type AddAccountRequest struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Email   string          `json:"email" validate:"required,email"`
	Balance decimal.Decimal `json:"balance" validate:"gte=0"`
}
