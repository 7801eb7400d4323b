package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// BrandFacet is one brand of the filter form and the models it offers.
type BrandFacet struct {
	Name   string
	Models []string
}

// Facets are the choices the filter form offers, derived from the fetched
// collection rather than the current filter so options never disappear
// while the user narrows the list.
type Facets struct {
	Brands   []BrandFacet
	Years    []int
	Seats    []int
	MaxPrice float64
}

// FacetsOf collects the brands, models, years and seat counts present in
// cars. Brands are grouped case-insensitively under their first spelling.
func FacetsOf(cars []Car) Facets {
	var f Facets
	brandIndex := make(map[string]int)
	years := make(map[int]bool)
	seats := make(map[int]bool)

	for _, c := range cars {
		if c.Price > f.MaxPrice {
			f.MaxPrice = c.Price
		}
		if c.Year > 0 {
			years[c.Year] = true
		}
		if c.Seats > 0 {
			seats[c.Seats] = true
		}
		if c.Brand == "" {
			continue
		}
		key := strings.ToLower(c.Brand)
		i, ok := brandIndex[key]
		if !ok {
			i = len(f.Brands)
			brandIndex[key] = i
			f.Brands = append(f.Brands, BrandFacet{Name: c.Brand})
		}
		if c.Model != "" && !slices.Contains(f.Brands[i].Models, c.Model) {
			f.Brands[i].Models = append(f.Brands[i].Models, c.Model)
		}
	}

	slices.SortFunc(f.Brands, func(a, b BrandFacet) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	for i := range f.Brands {
		slices.Sort(f.Brands[i].Models)
	}
	for y := range years {
		f.Years = append(f.Years, y)
	}
	slices.SortFunc(f.Years, func(a, b int) int { return cmp.Compare(b, a) })
	for s := range seats {
		f.Seats = append(f.Seats, s)
	}
	slices.Sort(f.Seats)
	return f
}
