package models

import "strings"

// Item categories form a closed taxonomy assigned by the extraction
// pipeline upstream. Unknown non-empty values normalize to Other at the
// store boundary; an absent category stays absent (uncategorized) and is
// excluded from category breakdowns.
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryGroceries      = "Groceries"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryUtilities      = "Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryTravel         = "Travel"
	CategoryOther          = "Other"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFoodDining,
		CategoryGroceries,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryTravel,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is a member of the taxonomy
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// NormalizeCategory maps a raw category string onto the closed taxonomy.
// Exact members pass through, case-insensitive matches are canonicalized,
// any other non-empty value becomes Other, and empty stays empty
// (uncategorized).
func NormalizeCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	for _, validCategory := range AllCategories() {
		if strings.EqualFold(trimmed, validCategory) {
			return validCategory
		}
	}
	return CategoryOther
}
