package main

import (
	"errors"
	"log"

	"github.com/quickmart/ledger/internal/config"
	"github.com/quickmart/ledger/internal/pricing"
	"github.com/quickmart/ledger/internal/services"
	"github.com/shopspring/decimal"
)

// The demo seeds a small catalog and walks one account through a
// successful purchase, a lookup miss, and an oversized order. All business
// rules live in the services package; this command only narrates results.
func main() {
	cfg := config.LoadDemoConfig()
	svc := services.NewLedgerServiceWithPricing(pricing.New(cfg.PricingPolicy))

	mustAddItem(svc, "Laptop", "999.99", 10)
	mustAddItem(svc, "Mouse", "25.99", 50)
	mustAddAccount(svc, "John Doe", "john@email.com", "1500.00")

	// A purchase that fits both stock and balance.
	order, err := svc.CreateOrder("john@email.com", "Laptop", 1)
	if err != nil {
		log.Fatalf("Failed to create order: %v", err)
	}
	log.Printf("Order #%d (%s): 1 x Laptop, total %s %s",
		order.ID, order.Reference, order.Total, cfg.Currency)

	if err := svc.ProcessOrder(order); err != nil {
		log.Fatalf("Failed to process order #%d: %v", order.ID, err)
	}
	log.Printf("Order #%d %s; Laptop stock %d, balance %s %s",
		order.ID, order.Status, order.Item.Quantity, order.Account.Balance, cfg.Currency)

	// An item nobody registered.
	if _, err := svc.CreateOrder("john@email.com", "Keyboard", 1); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			log.Printf("Keyboard order refused: %v", err)
		} else {
			log.Fatalf("Unexpected error ordering Keyboard: %v", err)
		}
	}

	// More units than the shelf holds. The order is created fine and
	// rejected at processing time.
	big, err := svc.CreateOrder("john@email.com", "Mouse", 100)
	if err != nil {
		log.Fatalf("Failed to create Mouse order: %v", err)
	}
	if err := svc.ProcessOrder(big); err != nil {
		log.Printf("Order #%d %s: %v", big.ID, big.Status, err)
	}

	log.Println("Final ledger state:")
	for _, item := range svc.Items() {
		log.Printf("  item %-8s price %8s qty %d", item.Name, item.Price, item.Quantity)
	}
	for _, account := range svc.Accounts() {
		log.Printf("  account %s (%s) balance %s %s",
			account.Email, account.Name, account.Balance, cfg.Currency)
	}
	for _, o := range svc.Orders() {
		log.Printf("  order #%d %s x%d total %s -> %s",
			o.ID, o.Item.Name, o.Quantity, o.Total, o.Status)
	}
}

func mustAddItem(svc *services.LedgerService, name, price string, quantity int) {
	if _, err := svc.AddItem(name, decimal.RequireFromString(price), quantity); err != nil {
		log.Fatalf("Failed to add item %s: %v", name, err)
	}
}

func mustAddAccount(svc *services.LedgerService, name, email, balance string) {
	if _, err := svc.AddAccount(name, email, decimal.RequireFromString(balance)); err != nil {
		log.Fatalf("Failed to add account %s: %v", email, err)
	}
}
