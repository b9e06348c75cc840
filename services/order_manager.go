package services

import (
	"sort"
	"sync"

	"github.com/savorybites/restaurant-backend/models"
)

// OrderObserver reacts to order status changes. A non-nil error aborts the
// remaining notifications for that event.
type OrderObserver interface {
	Update(orderID, status string) error
}

// StatusOrderCreated is the status string sent to observers when an order
// is first registered.
const StatusOrderCreated = "Order Created"

// OrderManager stores orders by id and notifies registered observers on
// every registration and status update. Dispatch is synchronous and runs in
// registration order.
type OrderManager struct {
	mu        sync.RWMutex
	observers []OrderObserver
	orders    map[string]*models.Order
}

func NewOrderManager() *OrderManager {
	return &OrderManager{orders: make(map[string]*models.Order)}
}

func (om *OrderManager) AddObserver(observer OrderObserver) {
	om.mu.Lock()
	defer om.mu.Unlock()
	om.observers = append(om.observers, observer)
}

func (om *OrderManager) RemoveObserver(observer OrderObserver) {
	om.mu.Lock()
	defer om.mu.Unlock()
	for i, o := range om.observers {
		if o == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			return
		}
	}
}

// AddOrder stores the order, then notifies every observer with
// "Order Created". The order stays stored even if an observer fails; the
// first observer error is returned.
func (om *OrderManager) AddOrder(order *models.Order) error {
	om.mu.Lock()
	om.orders[order.ID()] = order
	observers := om.snapshotObserversLocked()
	om.mu.Unlock()

	return notify(observers, order.ID(), StatusOrderCreated)
}

// UpdateStatus is a no-op for an unknown order id. A bad status value fails
// before any notification; on success every observer is notified with the
// new status, even when it equals the old one.
func (om *OrderManager) UpdateStatus(orderID, status string) error {
	om.mu.Lock()
	order, ok := om.orders[orderID]
	if !ok {
		om.mu.Unlock()
		return nil
	}
	if err := order.SetStatus(status); err != nil {
		om.mu.Unlock()
		return err
	}
	observers := om.snapshotObserversLocked()
	om.mu.Unlock()

	return notify(observers, orderID, string(order.Status()))
}

func (om *OrderManager) Get(orderID string) (*models.Order, bool) {
	om.mu.RLock()
	defer om.mu.RUnlock()
	order, ok := om.orders[orderID]
	return order, ok
}

// Orders returns the registered orders sorted by id.
func (om *OrderManager) Orders() []*models.Order {
	om.mu.RLock()
	defer om.mu.RUnlock()
	orders := make([]*models.Order, 0, len(om.orders))
	for _, order := range om.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID() < orders[j].ID() })
	return orders
}

func (om *OrderManager) snapshotObserversLocked() []OrderObserver {
	observers := make([]OrderObserver, len(om.observers))
	copy(observers, om.observers)
	return observers
}

// notify dispatches outside the manager lock so observers may call back
// into the manager. Fail-fast: the first error stops the run.
func notify(observers []OrderObserver, orderID, status string) error {
	for _, observer := range observers {
		if err := observer.Update(orderID, status); err != nil {
			return err
		}
	}
	return nil
}
