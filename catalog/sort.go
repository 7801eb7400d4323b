package catalog

import (
	"cmp"
	"slices"
)

// SortOption selects the listing order.
type SortOption string

const (
	SortRelevance SortOption = "relevance"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortYearDesc  SortOption = "year-desc"
)

// SortOptions lists every option in the order the sort control shows them.
var SortOptions = []SortOption{SortRelevance, SortPriceAsc, SortPriceDesc, SortYearDesc}

// ParseSortOption maps a query value to a SortOption. Unknown values fall
// back to relevance.
func ParseSortOption(s string) SortOption {
	opt := SortOption(s)
	if slices.Contains(SortOptions, opt) {
		return opt
	}
	return SortRelevance
}

// Sort returns a newly ordered copy of cars. Sorting is stable: cars that
// compare equal keep their relative input order, and relevance keeps the
// input order entirely.
func Sort(cars []Car, opt SortOption) []Car {
	out := slices.Clone(cars)
	if out == nil {
		out = []Car{}
	}
	switch opt {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Car) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Car) int { return cmp.Compare(b.Price, a.Price) })
	case SortYearDesc:
		slices.SortStableFunc(out, func(a, b Car) int { return cmp.Compare(b.Year, a.Year) })
	}
	return out
}
