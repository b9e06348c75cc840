package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// CartService is the shared item->quantity counter behind /api/cart. It
// lives for the whole process; a restart empties it. Increments happen
// under the lock so concurrent adds are never lost.
type CartService struct {
	mu    sync.Mutex
	items map[string]int
}

func NewCartService() *CartService {
	return &CartService{items: make(map[string]int)}
}

// Add increments the counter for the item.
func (cs *CartService) Add(itemID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.items[itemID]++
}

// Remove drops the item entirely, regardless of its quantity.
func (cs *CartService) Remove(itemID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.items, itemID)
}

// Snapshot returns a copy of the current contents.
func (cs *CartService) Snapshot() map[string]int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make(map[string]int, len(cs.items))
	for k, v := range cs.items {
		out[k] = v
	}
	return out
}

// String renders the cart as "{item=qty, item=qty}" in sorted item order.
func (cs *CartService) String() string {
	snapshot := cs.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, snapshot[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
