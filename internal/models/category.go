package models

import "errors"

// ErrUnknownCategory is returned when a category name is not part of the
// closed set.
var ErrUnknownCategory = errors.New("unknown category")

// Category classifies an expense. The set is closed; values are stored
// in the database by name.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryShopping      Category = "Shopping"
	CategoryOthers        Category = "Others"
)

// Categories lists all categories in declaration order. Ranking code
// relies on this order to break ties deterministically.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryShopping,
	CategoryOthers,
}

var categoryRank = func() map[Category]int {
	m := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		m[c] = i
	}
	return m
}()

// ParseCategory validates a category name against the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryRank[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Rank returns the category's position in declaration order.
// Unknown categories sort last.
func (c Category) Rank() int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return len(Categories)
}
