package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savorybites/restaurant-backend/models"
)

func newItem(t *testing.T, itemType, id string, price float64) *models.MenuItem {
	t.Helper()
	item, err := models.CreateMenuItem(itemType, id, id, price, "")
	assert.NoError(t, err)
	return item
}

func TestPriceAfterDiscount(t *testing.T) {
	item := newItem(t, "appetizer", "wings", 12.0)

	for _, d := range []float64{0, 10, 50, 100} {
		got, err := item.PriceAfterDiscount(d)
		assert.NoError(t, err)
		assert.InDelta(t, 12.0*(1-d/100), got, 1e-9)
	}
}

func TestPriceAfterDiscountOutOfRange(t *testing.T) {
	item := newItem(t, "dessert", "pie", 5.0)

	for _, d := range []float64{-1, 100.01, 250} {
		_, err := item.PriceAfterDiscount(d)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	}
}

func TestMainCourseDiscountBonus(t *testing.T) {
	expensive := newItem(t, "main", "steak", 25.0)
	got, err := expensive.PriceAfterDiscount(10)
	assert.NoError(t, err)
	// 10% requested + 5 bonus points above the 20 threshold
	assert.InDelta(t, 21.25, got, 1e-9)

	cheap := newItem(t, "main", "pasta", 15.0)
	got, err = cheap.PriceAfterDiscount(10)
	assert.NoError(t, err)
	assert.InDelta(t, 13.5, got, 1e-9)

	// threshold is strict: exactly 20 gets no bonus
	border := newItem(t, "main", "burger", 20.0)
	got, err = border.PriceAfterDiscount(10)
	assert.NoError(t, err)
	assert.InDelta(t, 18.0, got, 1e-9)
}

func TestMainCourseBonusPushesDiscountOutOfRange(t *testing.T) {
	item := newItem(t, "main", "steak", 25.0)
	// 97 + 5 = 102, rejected before any arithmetic
	_, err := item.PriceAfterDiscount(97)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestPriceAfterTax(t *testing.T) {
	item := newItem(t, "appetizer", "salad", 10.0)

	got, err := item.PriceAfterTax(10, 8.5)
	assert.NoError(t, err)
	assert.InDelta(t, 9.0*1.085, got, 1e-9)

	// tax is intentionally not range-checked
	got, err = item.PriceAfterTax(0, 200)
	assert.NoError(t, err)
	assert.InDelta(t, 30.0, got, 1e-9)
}

func TestSetPriceValidation(t *testing.T) {
	item := newItem(t, "appetizer", "wings", 12.99)

	err := item.SetPrice(-1)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Equal(t, 12.99, item.Price())

	assert.NoError(t, item.SetPrice(14.50))
	assert.Equal(t, 14.50, item.Price())
}

func TestSetCaloriesValidation(t *testing.T) {
	item := newItem(t, "dessert", "pie", 5.0)
	assert.Equal(t, 350, item.Calories())

	err := item.SetCalories(-10)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Equal(t, 350, item.Calories())

	assert.NoError(t, item.SetCalories(120))
	assert.Equal(t, 120, item.Calories())
}
