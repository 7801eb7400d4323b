package catalog

// ActiveFilterCount counts the filter dimensions that currently constrain the
// listing. It drives the "Clear Filters" control and the badge next to it.
//
// The price range is not counted: it always holds a value, so it cannot be
// told apart from "no constraint" without knowing the catalog's price bounds.
func (f Filters) ActiveFilterCount() int {
	n := 0
	if len(f.Brands) > 0 {
		n++
	}
	if f.Year != "" {
		n++
	}
	if len(f.FuelTypes) > 0 {
		n++
	}
	if len(f.Transmissions) > 0 {
		n++
	}
	if len(f.Seats) > 0 {
		n++
	}
	return n
}
