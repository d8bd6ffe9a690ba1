package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// The original balance setter silently kept the old value on a negative
// assignment; here that is escalated to an explicit error so callers do
// not have to re-read the balance to learn the assignment was refused.
func TestAccount_SetBalance(t *testing.T) {
	account := &Account{
		Email:   "john@email.com",
		Name:    "John Doe",
		Balance: decimal.RequireFromString("100.00"),
	}

	t.Run("positive assignment applies", func(t *testing.T) {
		err := account.SetBalance(decimal.RequireFromString("250.50"))
		assert.NoError(t, err)
		assert.Equal(t, "250.5", account.Balance.String())
	})

	t.Run("zero assignment applies", func(t *testing.T) {
		err := account.SetBalance(decimal.Zero)
		assert.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("negative assignment refused, old value kept", func(t *testing.T) {
		assert.NoError(t, account.SetBalance(decimal.RequireFromString("10.00")))

		err := account.SetBalance(decimal.RequireFromString("-1.00"))
		assert.ErrorIs(t, err, ErrNegativeBalance)
		assert.Equal(t, "10", account.Balance.String())
	})
}
