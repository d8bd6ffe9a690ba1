package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quickmart/ledger/internal/models"
	"github.com/quickmart/ledger/internal/pricing"
	"github.com/shopspring/decimal"
)

// LedgerService owns the item and account registries and mediates order
// creation and processing. A single service-wide mutex serializes every
// operation, so the check-then-mutate sequence in ProcessOrder and the
// order ID counter are atomic even under concurrent callers.
//
// Registries are keyed by identifier (item name, account email) with
// insertion order preserved for deterministic listings.
type LedgerService struct {
	mu          sync.Mutex
	items       map[string]*models.Item
	itemNames   []string
	accounts    map[string]*models.Account
	accountKeys []string
	log         *OrderLog
	pricer      pricing.Pricer
	validator   *ValidationHelper
	lastOrderID int64
}

// NewLedgerService creates an empty ledger that charges the flat
// unit-price-times-quantity total.
func NewLedgerService() *LedgerService {
	return NewLedgerServiceWithPricing(pricing.Flat{})
}

// NewLedgerServiceWithPricing creates an empty ledger with a specific
// pricing policy.
func NewLedgerServiceWithPricing(pricer pricing.Pricer) *LedgerService {
	return &LedgerService{
		items:     make(map[string]*models.Item),
		accounts:  make(map[string]*models.Account),
		log:       NewOrderLog(),
		pricer:    pricer,
		validator: NewValidationHelper(),
	}
}

// AddItem registers a sellable item. Names are unique; registering an
// existing name fails with ErrDuplicateIdentifier.
func (s *LedgerService) AddItem(name string, price decimal.Decimal, quantity int) (*models.Item, error) {
	req := models.AddItemRequest{Name: name, Price: price, Quantity: quantity}
	if err := s.validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[name]; exists {
		return nil, fmt.Errorf("item %q: %w", name, ErrDuplicateIdentifier)
	}

	item := &models.Item{
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.items[name] = item
	s.itemNames = append(s.itemNames, name)
	return item, nil
}

// AddAccount registers a purchaser. Emails are unique; registering an
// existing email fails with ErrDuplicateIdentifier.
func (s *LedgerService) AddAccount(name, email string, balance decimal.Decimal) (*models.Account, error) {
	req := models.AddAccountRequest{Name: name, Email: email, Balance: balance}
	if err := s.validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("add account: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return nil, fmt.Errorf("account %q: %w", email, ErrDuplicateIdentifier)
	}

	account := &models.Account{
		Email:     email,
		Name:      name,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
	s.accounts[email] = account
	s.accountKeys = append(s.accountKeys, email)
	return account, nil
}

// FindItem looks an item up by name.
func (s *LedgerService) FindItem(name string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", name, ErrItemNotFound)
	}
	return item, nil
}

// FindAccount looks an account up by email.
func (s *LedgerService) FindAccount(email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", email, ErrAccountNotFound)
	}
	return account, nil
}

// CreateOrder resolves the account and item, snapshots the total under the
// current pricing policy, and records a pending order. No stock or balance
// changes until ProcessOrder runs. Order IDs are sequential starting at 1
// and are never reused, including for orders later rejected.
func (s *LedgerService) CreateOrder(email, itemName string, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("create order for %d units: %w", quantity, ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", email, ErrAccountNotFound)
	}
	item, ok := s.items[itemName]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", itemName, ErrItemNotFound)
	}

	s.lastOrderID++
	order := &models.Order{
		ID:        s.lastOrderID,
		Reference: uuid.New(),
		Account:   account,
		Item:      item,
		Quantity:  quantity,
		Total:     s.pricer.Total(item.Price, quantity),
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	s.log.Append(order)
	return order, nil
}

// ProcessOrder re-validates stock and balance at apply time and, on
// success, deducts both together. Both checks run strictly before either
// mutation, so a rejected order leaves every entity untouched. Processed
// and rejected orders are terminal; reprocessing fails with
// ErrOrderNotPending and deducts nothing.
func (s *LedgerService) ProcessOrder(order *models.Order) error {
	if order == nil {
		return fmt.Errorf("process order: %w", ErrOrderNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if order.Status != models.OrderStatusPending {
		return fmt.Errorf("order %d is %s: %w", order.ID, order.Status, ErrOrderNotPending)
	}

	item := order.Item
	account := order.Account

	if item.Quantity < order.Quantity {
		s.finish(order, models.OrderStatusRejected)
		return fmt.Errorf("order %d wants %d of %q, %d in stock: %w",
			order.ID, order.Quantity, item.Name, item.Quantity, ErrInsufficientStock)
	}
	if account.Balance.LessThan(order.Total) {
		s.finish(order, models.OrderStatusRejected)
		return fmt.Errorf("order %d totals %s, account %q holds %s: %w",
			order.ID, order.Total, account.Email, account.Balance, ErrInsufficientBalance)
	}

	item.Quantity -= order.Quantity
	account.Balance = account.Balance.Sub(order.Total)
	s.finish(order, models.OrderStatusProcessed)
	return nil
}

func (s *LedgerService) finish(order *models.Order, status models.OrderStatus) {
	now := time.Now()
	order.Status = status
	order.ProcessedAt = &now
}

// GetOrder returns a previously created order by ID.
func (s *LedgerService) GetOrder(id int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Get(id)
}

// Orders returns every order the ledger has created, in creation order.
func (s *LedgerService) Orders() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Orders()
}

// Items returns the registered items in insertion order.
func (s *LedgerService) Items() []*models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Item, 0, len(s.itemNames))
	for _, name := range s.itemNames {
		out = append(out, s.items[name])
	}
	return out
}

// Accounts returns the registered accounts in insertion order.
func (s *LedgerService) Accounts() []*models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Account, 0, len(s.accountKeys))
	for _, email := range s.accountKeys {
		out = append(out, s.accounts[email])
	}
	return out
}
