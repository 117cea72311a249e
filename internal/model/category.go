package model

import "strings"

// Category names a spending bucket a transaction is assigned to.
// The built-in set below can be extended by user-defined category tables.
type Category string

// Other is the catch-all category for transactions no rule matches.
const Other Category = "other"

// Built-in categories.
const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Health        Category = "Health"
	Utilities     Category = "Utilities"
	Clothing      Category = "Clothing"
)

// OrOther returns c, or Other when c is blank.
func (c Category) OrOther() Category {
	if strings.TrimSpace(string(c)) == "" {
		return Other
	}
	return c
}

// IsOther reports whether c is the catch-all category.
func (c Category) IsOther() bool {
	return c.OrOther() == Other
}

func (c Category) String() string {
	return string(c)
}

// CategoryRule maps a category to the lowercase keywords that select it.
type CategoryRule struct {
	Name     Category
	Keywords []string
}

// CategoryTable is an ordered rule set. Earlier rules win.
type CategoryTable []CategoryRule

// Names returns the category names in match order.
func (t CategoryTable) Names() []Category {
	names := make([]Category, 0, len(t))
	for _, r := range t {
		names = append(names, r.Name)
	}
	return names
}

// DefaultCategoryTable returns the built-in keyword table.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		{Name: Food, Keywords: []string{
			"grocery", "supermarket", "restaurant", "cafe", "coffee",
			"bakery", "pizza", "burger", "lunch", "dinner",
		}},
		{Name: Transport, Keywords: []string{
			"taxi", "uber", "metro", "subway", "bus ticket", "train",
			"fuel", "gas station", "parking",
		}},
		{Name: Entertainment, Keywords: []string{
			"cinema", "movie", "netflix", "spotify", "concert",
			"theatre", "theater", "museum",
		}},
		{Name: Health, Keywords: []string{
			"pharmacy", "doctor", "clinic", "dentist", "hospital", "gym",
		}},
		{Name: Utilities, Keywords: []string{
			"electricity", "water bill", "gas bill", "internet",
			"mobile plan", "phone bill", "heating",
		}},
		{Name: Clothing, Keywords: []string{
			"clothing", "clothes", "shoes", "apparel", "jacket",
		}},
	}
}
