package catalog

import (
	"slices"
	"strconv"
	"strings"
)

// PriceRange bounds the listing price, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters is the complete filter state of the listing page. The zero value of
// every field except Price means "no constraint".
type Filters struct {
	Price PriceRange `json:"price"`

	// Brands maps a brand name to the selected models of that brand. An empty
	// model list selects every model of the brand.
	Brands map[string][]string `json:"brands,omitempty"`

	// Year is matched exactly after numeric coercion. A value that is not a
	// number matches nothing.
	Year string `json:"year,omitempty"`

	FuelTypes     []string `json:"fuel_types,omitempty"`
	Transmissions []string `json:"transmissions,omitempty"`
	Seats         []int    `json:"seats,omitempty"`
}

// DefaultFilters returns the unconstrained filter state for a catalog whose
// prices never exceed maxPrice.
func DefaultFilters(maxPrice float64) Filters {
	return Filters{Price: PriceRange{Min: 0, Max: maxPrice}}
}

// Filter returns the cars that satisfy every active dimension of f, in their
// original order. The input slice is not modified.
func Filter(cars []Car, f Filters) []Car {
	brands := lowerBrandKeys(f.Brands)
	result := make([]Car, 0, len(cars))
	for _, c := range cars {
		if f.matches(c, brands) {
			result = append(result, c)
		}
	}
	return result
}

// Matches reports whether a single car passes f.
func (f Filters) Matches(c Car) bool {
	return f.matches(c, lowerBrandKeys(f.Brands))
}

func (f Filters) matches(c Car, brands map[string][]string) bool {
	if c.Price < f.Price.Min || c.Price > f.Price.Max {
		return false
	}
	if f.Year != "" && !yearMatches(c.Year, f.Year) {
		return false
	}
	if len(f.FuelTypes) > 0 && !intersects(c.FuelTypes, f.FuelTypes) {
		return false
	}
	if len(f.Transmissions) > 0 && !slices.Contains(f.Transmissions, c.Transmission) {
		return false
	}
	if len(f.Seats) > 0 && !slices.Contains(f.Seats, c.Seats) {
		return false
	}
	if len(brands) > 0 {
		models, ok := brands[strings.ToLower(c.Brand)]
		if !ok {
			return false
		}
		if len(models) > 0 && !slices.Contains(models, c.Model) {
			return false
		}
	}
	return true
}

func yearMatches(year int, want string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(want))
	if err != nil {
		return false
	}
	return year == n
}

// lowerBrandKeys folds brand keys to lower case. Model lists of keys that
// collide after folding are merged; an empty list wins because it already
// selects every model.
func lowerBrandKeys(brands map[string][]string) map[string][]string {
	if len(brands) == 0 {
		return nil
	}
	out := make(map[string][]string, len(brands))
	for brand, models := range brands {
		key := strings.ToLower(brand)
		prev, seen := out[key]
		switch {
		case !seen:
			out[key] = models
		case len(prev) == 0 || len(models) == 0:
			out[key] = nil
		default:
			out[key] = append(slices.Clone(prev), models...)
		}
	}
	return out
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if slices.Contains(b, x) {
			return true
		}
	}
	return false
}
