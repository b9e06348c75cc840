package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savorybites/restaurant-backend/models"
	"github.com/savorybites/restaurant-backend/services"
)

func TestMenuCatalog(t *testing.T) {
	catalog := services.NewMenuCatalog()

	wings, err := models.CreateMenuItem("appetizer", "wings", "Buffalo Wings", 12.99, "")
	assert.NoError(t, err)
	steak, err := models.CreateMenuItem("main", "steak", "Ribeye", 28.99, "")
	assert.NoError(t, err)

	assert.NoError(t, catalog.Add(wings))
	assert.NoError(t, catalog.Add(steak))
	assert.Equal(t, 2, catalog.Len())

	got, ok := catalog.Get("wings")
	assert.True(t, ok)
	assert.Same(t, wings, got)

	_, ok = catalog.Get("missing")
	assert.False(t, ok)

	items := catalog.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "steak", items[0].ID)
	assert.Equal(t, "wings", items[1].ID)

	catalog.Remove("wings")
	_, ok = catalog.Get("wings")
	assert.False(t, ok)

	assert.ErrorIs(t, catalog.Add(nil), models.ErrInvalidArgument)
}
