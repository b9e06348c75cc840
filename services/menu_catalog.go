package services

import (
	"sort"
	"sync"

	"github.com/savorybites/restaurant-backend/models"
)

// MenuCatalog holds the menu items keyed by id. Reads vastly outnumber
// writes, so it is guarded by a RWMutex.
type MenuCatalog struct {
	mu    sync.RWMutex
	items map[string]*models.MenuItem
}

func NewMenuCatalog() *MenuCatalog {
	return &MenuCatalog{items: make(map[string]*models.MenuItem)}
}

func (mc *MenuCatalog) Add(item *models.MenuItem) error {
	if item == nil {
		return models.InvalidArgumentf("Cannot add nil item")
	}
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.items[item.ID] = item
	return nil
}

func (mc *MenuCatalog) Get(id string) (*models.MenuItem, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	item, ok := mc.items[id]
	return item, ok
}

func (mc *MenuCatalog) Remove(id string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.items, id)
}

// Items returns the catalog sorted by id so listings are stable.
func (mc *MenuCatalog) Items() []*models.MenuItem {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	items := make([]*models.MenuItem, 0, len(mc.items))
	for _, item := range mc.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (mc *MenuCatalog) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.items)
}
