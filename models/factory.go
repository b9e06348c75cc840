package models

import "strings"

// CreateMenuItem builds a menu item from a case-insensitive category tag:
// "appetizer", "maincourse"/"main" or "dessert". Category-specific
// attributes not supplied by the caller get sensible defaults. An empty
// description defaults to "Delicious <type>".
func CreateMenuItem(itemType, id, name string, price float64, description string) (*MenuItem, error) {
	if itemType == "" {
		return nil, InvalidArgumentf("Menu item type cannot be empty")
	}
	if description == "" {
		description = "Delicious " + itemType
	}

	item := &MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		price:       price,
	}

	switch strings.ToLower(itemType) {
	case "appetizer":
		item.category = CategoryAppetizer
		item.ServingSize = "Small"
		item.Vegetarian = true
	case "maincourse", "main":
		item.category = CategoryMainCourse
		item.CookingTime = "25 mins"
		item.SpiceLevel = "Medium"
	case "dessert":
		item.category = CategoryDessert
		item.calories = 350
		item.ContainsNuts = false
	default:
		return nil, InvalidArgumentf("Unknown menu item type: %s", itemType)
	}
	return item, nil
}
