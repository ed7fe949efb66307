package constants

import (
	"strings"
)

type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Bills          Category = "Bills"
	Healthcare     Category = "Healthcare"
	Education      Category = "Education"
	Travel         Category = "Travel"
	Other          Category = "Other"

	// Tax is assigned only to synthesized tax line items, never by the model.
	Tax Category = "Tax"
)

var allCategories = []Category{
	Food,
	Transportation,
	Entertainment,
	Shopping,
	Bills,
	Healthcare,
	Education,
	Travel,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form classifier output onto the closed category set.
// Unknown or empty labels fall back to Other.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"groceries":  Food,
		"grocery":    Food,
		"dining":     Food,
		"restaurant": Food,
		"transport":  Transportation,
		"transit":    Transportation,
		"gas":        Transportation,
		"fuel":       Transportation,
		"utilities":  Bills,
		"utility":    Bills,
		"medical":    Healthcare,
		"pharmacy":   Healthcare,
		"movies":     Entertainment,
		"tuition":    Education,
		"hotel":      Travel,
		"airline":    Travel,
		"flight":     Travel,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
