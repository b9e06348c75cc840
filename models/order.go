package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// TaxRateProvider supplies the current tax rate percentage for total
// computation. *config.Config satisfies it.
type TaxRateProvider interface {
	TaxRate() float64
}

// OrderStatus is one of the five order lifecycle states. Transitions are
// unconstrained; only the value set is enforced.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled,
}

// ParseOrderStatus matches case-insensitively and returns the canonical
// value.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range orderStatuses {
		if strings.EqualFold(string(status), s) {
			return status, nil
		}
	}
	return "", InvalidArgumentf("Invalid status: %s", s)
}

// Order aggregates one customer and a sequence of menu item references.
// The total is cached and recomputed after every item mutation, reading the
// tax rate from the configuration at computation time. Orders are shared
// between request goroutines once registered, so the mutable fields are
// guarded by their own lock.
type Order struct {
	id        string
	customer  *User
	createdAt time.Time
	cfg       TaxRateProvider

	mu          sync.RWMutex
	items       []*MenuItem
	status      OrderStatus
	totalAmount float64
}

func NewOrder(id string, customer *User, cfg TaxRateProvider) *Order {
	return &Order{
		id:        id,
		customer:  customer,
		createdAt: time.Now(),
		status:    StatusPending,
		cfg:       cfg,
	}
}

func (o *Order) ID() string           { return o.id }
func (o *Order) Customer() *User      { return o.customer }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Status() OrderStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

func (o *Order) TotalAmount() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.totalAmount
}

func (o *Order) ItemCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.items)
}

// Items returns a copy; callers cannot reorder or grow the internal list.
func (o *Order) Items() []*MenuItem {
	o.mu.RLock()
	defer o.mu.RUnlock()
	items := make([]*MenuItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends one item reference and recomputes the total.
func (o *Order) AddItem(item *MenuItem) error {
	if item == nil {
		return InvalidArgumentf("Cannot add nil item")
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, item)
	o.calculateTotalLocked()
	return nil
}

// AddItemQuantity appends quantity references to the same item.
func (o *Order) AddItemQuantity(item *MenuItem, quantity int) error {
	if quantity <= 0 {
		return InvalidArgumentf("Quantity must be positive")
	}
	for i := 0; i < quantity; i++ {
		if err := o.AddItem(item); err != nil {
			return err
		}
	}
	return nil
}

// RemoveItem drops the first matching reference, if any, and recomputes
// the total.
func (o *Order) RemoveItem(item *MenuItem) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, it := range o.items {
		if it == item {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.calculateTotalLocked()
			return
		}
	}
}

// SetStatus accepts any casing of the five valid states and stores the
// canonical value; the status is unchanged on error.
func (o *Order) SetStatus(status string) error {
	parsed, err := ParseOrderStatus(status)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = parsed
	return nil
}

func (o *Order) calculateTotalLocked() {
	total := 0.0
	for _, item := range o.items {
		total += item.Price()
	}
	total += total * o.cfg.TaxRate() / 100
	o.totalAmount = total
}

func (o *Order) String() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return fmt.Sprintf("Order[%s] - Customer: %s, Items: %d, Total: $%.2f, Status: %s",
		o.id, o.customer.Name(), len(o.items), o.totalAmount, o.status)
}

func (o *Order) MarshalJSON() ([]byte, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return json.Marshal(map[string]interface{}{
		"id":           o.id,
		"customer":     o.customer,
		"items":        o.items,
		"created_at":   o.createdAt,
		"status":       string(o.status),
		"total_amount": o.totalAmount,
		"item_count":   len(o.items),
	})
}
