package models

import (
	"encoding/json"
	"fmt"
)

// Category tags the menu item variants.
type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
)

// mainCourseBonusThreshold: main courses above this base price get an extra
// 5 percentage points of discount before the regular discount calculation.
const (
	mainCourseBonusThreshold = 20.0
	mainCourseBonusDiscount  = 5.0
)

// MenuItem is a catalog entry in one of three categories. Category-specific
// fields are only meaningful for the matching category; the rest stay at
// their zero value. Price and calories are kept private so every mutation
// goes through the validated setters.
type MenuItem struct {
	ID          string
	Name        string
	Description string

	category Category
	price    float64

	// Appetizer
	ServingSize string
	Vegetarian  bool

	// Main course
	CookingTime string
	SpiceLevel  string

	// Dessert
	calories     int
	ContainsNuts bool
}

// Category returns the variant tag.
func (m *MenuItem) Category() Category { return m.category }

// ItemType returns the human label of the category.
func (m *MenuItem) ItemType() string { return string(m.category) }

func (m *MenuItem) Price() float64 { return m.price }

// SetPrice validates before assigning; the item is unchanged on error.
func (m *MenuItem) SetPrice(price float64) error {
	if price < 0 {
		return InvalidArgumentf("Price cannot be negative")
	}
	m.price = price
	return nil
}

// Calories is only meaningful for desserts.
func (m *MenuItem) Calories() int { return m.calories }

func (m *MenuItem) SetCalories(calories int) error {
	if calories < 0 {
		return InvalidArgumentf("Calories cannot be negative")
	}
	m.calories = calories
	return nil
}

// CalculatePrice returns the raw price.
func (m *MenuItem) CalculatePrice() float64 { return m.price }

// PriceAfterDiscount applies a percentage discount. Main courses priced
// above 20 receive an extra 5 points of discount before the range check,
// so an out-of-range effective discount still fails.
func (m *MenuItem) PriceAfterDiscount(discount float64) (float64, error) {
	if m.category == CategoryMainCourse && m.price > mainCourseBonusThreshold {
		discount += mainCourseBonusDiscount
	}
	if discount < 0 || discount > 100 {
		return 0, InvalidArgumentf("Discount must be between 0 and 100")
	}
	return m.price - (m.price * discount / 100), nil
}

// PriceAfterTax applies the discount, then adds tax on the discounted
// price. The tax argument is not range-checked.
func (m *MenuItem) PriceAfterTax(discount, tax float64) (float64, error) {
	discounted, err := m.PriceAfterDiscount(discount)
	if err != nil {
		return 0, err
	}
	return discounted + (discounted * tax / 100), nil
}

func (m *MenuItem) String() string {
	s := fmt.Sprintf("%s: %s - $%.2f", m.ItemType(), m.Name, m.price)
	switch m.category {
	case CategoryAppetizer:
		if m.Vegetarian {
			s += " [Vegetarian]"
		}
	case CategoryDessert:
		s += fmt.Sprintf(" (%d cal)", m.calories)
	}
	return s
}

// MarshalJSON exposes the private price/calories fields plus only the
// attributes of the item's own category.
func (m *MenuItem) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"id":          m.ID,
		"name":        m.Name,
		"price":       m.price,
		"category":    string(m.category),
		"description": m.Description,
	}
	switch m.category {
	case CategoryAppetizer:
		out["serving_size"] = m.ServingSize
		out["is_vegetarian"] = m.Vegetarian
	case CategoryMainCourse:
		out["cooking_time"] = m.CookingTime
		out["spice_level"] = m.SpiceLevel
	case CategoryDessert:
		out["calories"] = m.calories
		out["contains_nuts"] = m.ContainsNuts
	}
	return json.Marshal(out)
}
