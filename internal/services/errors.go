package services

import "errors"

// Error taxonomy for ledger operations. Every error is recoverable and is
// reported to the caller as a value; a failed operation leaves the ledger
// unchanged. Callers branch with errors.Is.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrOrderNotPending     = errors.New("order is no longer pending")
)
