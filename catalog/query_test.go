package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery_Defaults(t *testing.T) {
	f, opt, page := ParseQuery(url.Values{}, 5e6)
	assert.Equal(t, DefaultFilters(5e6), f)
	assert.Equal(t, SortRelevance, opt)
	assert.Equal(t, 1, page)
	assert.Zero(t, f.ActiveFilterCount())
}

func TestParseQuery(t *testing.T) {
	q, err := url.ParseQuery("min_price=50000&max_price=150000&brand=Honda&model=Toyota:Camry" +
		"&model=Toyota:Prius&model=bad&year=+2020+&fuel=petrol&fuel=&transmission=auto" +
		"&seats=5&seats=x&sort=price-desc&page=3")
	require.NoError(t, err)

	f, opt, page := ParseQuery(q, 5e6)
	assert.Equal(t, PriceRange{Min: 50000, Max: 150000}, f.Price)
	assert.Equal(t, map[string][]string{"Honda": nil, "Toyota": {"Camry", "Prius"}}, f.Brands)
	assert.Equal(t, "2020", f.Year)
	assert.Equal(t, []string{"petrol"}, f.FuelTypes)
	assert.Equal(t, []string{"auto"}, f.Transmissions)
	assert.Equal(t, []int{5}, f.Seats)
	assert.Equal(t, SortPriceDesc, opt)
	assert.Equal(t, 3, page)

	assert.Equal(t, []int{1}, ids(Filter(sampleCatalog(), f)))
}

func TestParseQuery_BadValues(t *testing.T) {
	q := url.Values{"min_price": {"-5"}, "max_price": {"lots"}, "page": {"0"}, "sort": {"cheapest"}}
	f, opt, page := ParseQuery(q, 1000)
	assert.Equal(t, PriceRange{Min: 0, Max: 1000}, f.Price)
	assert.Equal(t, SortRelevance, opt)
	assert.Equal(t, 1, page)
}

func TestFilters_Query(t *testing.T) {
	f := DefaultFilters(5e6)
	assert.Empty(t, f.Query(5e6, SortRelevance, 1).Encode())

	f.Price.Max = 200000
	f.Brands = map[string][]string{"Toyota": {"Camry"}, "BMW": nil}
	f.Year = "2022"
	f.Seats = []int{7}

	q := f.Query(5e6, SortYearDesc, 2)
	assert.Equal(t, "brand=BMW&max_price=200000&model=Toyota%3ACamry&page=2&seats=7&sort=year-desc&year=2022", q.Encode())

	back, opt, page := ParseQuery(q, 5e6)
	assert.Equal(t, f, back)
	assert.Equal(t, SortYearDesc, opt)
	assert.Equal(t, 2, page)
}
