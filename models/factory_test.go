package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savorybites/restaurant-backend/models"
)

func TestFactoryCaseInsensitive(t *testing.T) {
	item, err := models.CreateMenuItem("DESSERT", "d1", "Pie", 5.0, "")
	assert.NoError(t, err)
	assert.Equal(t, "Dessert", item.ItemType())

	item, err = models.CreateMenuItem("MainCourse", "m1", "Steak", 28.99, "")
	assert.NoError(t, err)
	assert.Equal(t, "Main Course", item.ItemType())

	item, err = models.CreateMenuItem("main", "m2", "Pasta", 15.0, "")
	assert.NoError(t, err)
	assert.Equal(t, "Main Course", item.ItemType())
}

func TestFactoryUnknownType(t *testing.T) {
	_, err := models.CreateMenuItem("burger", "b1", "Burger", 9.0, "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = models.CreateMenuItem("", "b1", "Burger", 9.0, "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestFactoryDefaults(t *testing.T) {
	appetizer, err := models.CreateMenuItem("appetizer", "a1", "Wings", 12.99, "")
	assert.NoError(t, err)
	assert.Equal(t, "Small", appetizer.ServingSize)
	assert.True(t, appetizer.Vegetarian)
	assert.Equal(t, "Delicious appetizer", appetizer.Description)

	main, err := models.CreateMenuItem("main", "m1", "Steak", 28.99, "12oz ribeye")
	assert.NoError(t, err)
	assert.Equal(t, "25 mins", main.CookingTime)
	assert.Equal(t, "Medium", main.SpiceLevel)
	assert.Equal(t, "12oz ribeye", main.Description)

	dessert, err := models.CreateMenuItem("dessert", "d1", "Pie", 5.0, "")
	assert.NoError(t, err)
	assert.Equal(t, 350, dessert.Calories())
	assert.False(t, dessert.ContainsNuts)
}
