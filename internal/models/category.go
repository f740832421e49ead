package models

import (
	"golang.org/x/exp/slices"
)

// Category names.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryOthers        = "Others"
)

// categories is the closed set of valid categories, in display order.
var categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryEntertainment,
	CategoryOthers,
}

// Categories returns all valid categories in display order.
//
// The returned slice is a copy and can be modified by the caller.
func Categories() []string {
	return slices.Clone(categories)
}

// IsCategory reports whether name is one of the valid categories.
// The comparison is case sensitive.
func IsCategory(name string) bool {
	return slices.Contains(categories, name)
}
