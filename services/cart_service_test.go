package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savorybites/restaurant-backend/services"
)

func TestCartAddAndRemove(t *testing.T) {
	cart := services.NewCartService()
	cart.Add("wings")
	cart.Add("wings")
	cart.Add("salad")

	assert.Equal(t, map[string]int{"wings": 2, "salad": 1}, cart.Snapshot())

	// remove drops the entry entirely, it does not decrement
	cart.Remove("wings")
	assert.Equal(t, map[string]int{"salad": 1}, cart.Snapshot())

	cart.Remove("never-added")
	assert.Equal(t, map[string]int{"salad": 1}, cart.Snapshot())
}

func TestCartStringSorted(t *testing.T) {
	cart := services.NewCartService()
	assert.Equal(t, "{}", cart.String())

	cart.Add("wings")
	cart.Add("wings")
	cart.Add("salad")
	assert.Equal(t, "{salad=1, wings=2}", cart.String())
}

func TestCartSnapshotIsACopy(t *testing.T) {
	cart := services.NewCartService()
	cart.Add("wings")

	snapshot := cart.Snapshot()
	snapshot["wings"] = 99

	assert.Equal(t, map[string]int{"wings": 1}, cart.Snapshot())
}

func TestCartConcurrentAdds(t *testing.T) {
	cart := services.NewCartService()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart.Add("wings")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, cart.Snapshot()["wings"])
}
