package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveFilterCount(t *testing.T) {
	tests := []struct {
		name     string
		filters  Filters
		expected int
	}{
		{"defaults", DefaultFilters(500000), 0},
		{"price range is not counted", Filters{Price: PriceRange{Min: 1000, Max: 2000}}, 0},
		{"empty collections", Filters{Brands: map[string][]string{}, FuelTypes: []string{}, Seats: []int{}}, 0},
		{"brand", Filters{Brands: map[string][]string{"Toyota": nil}}, 1},
		{"year", Filters{Year: "2020"}, 1},
		{"all", Filters{
			Brands:        map[string][]string{"Toyota": nil, "Honda": {"Civic"}},
			Year:          "2021",
			FuelTypes:     []string{"petrol"},
			Transmissions: []string{"auto"},
			Seats:         []int{5},
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.ActiveFilterCount())
		})
	}
}

func TestListing_ResetsPage(t *testing.T) {
	l := NewListing(sampleCatalog(), noLimit(), 2)

	l.SetPage(3)
	assert.Equal(t, 3, l.Page())
	f := noLimit()
	f.Seats = []int{5}
	l.SetFilters(f)
	assert.Equal(t, 1, l.Page())

	l.SetPage(2)
	l.SetSort(SortPriceDesc)
	assert.Equal(t, 1, l.Page())
	assert.Equal(t, SortPriceDesc, l.Sort())
}

func TestListing_SetPageClamps(t *testing.T) {
	l := NewListing(sampleCatalog(), noLimit(), 2)
	l.SetPage(-4)
	assert.Equal(t, 1, l.Page())
}

func TestListing_View(t *testing.T) {
	f := noLimit()
	f.Transmissions = []string{"auto"}
	l := NewListing(sampleCatalog(), f, 2)
	l.SetSort(SortPriceAsc)
	l.SetPage(2)

	v := l.View()
	assert.Equal(t, 6, v.Total)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 2, v.Page)
	assert.Equal(t, 1, v.ActiveFilters)
	// auto cars by price: 1(100k) 3(150k) 8(150k) 2(200k) 4(320k) 6(410k)
	assert.Equal(t, []int{8, 2}, ids(v.Items))
	assert.False(t, v.NoResults())
}

func TestListing_ViewNoResults(t *testing.T) {
	f := noLimit()
	f.Brands = map[string][]string{"Lada": nil}
	v := NewListing(sampleCatalog(), f, 9).View()
	assert.True(t, v.NoResults())
	assert.Equal(t, 0, v.TotalPages)
	assert.Empty(t, v.Items)
}

func TestListing_ViewPastLastPage(t *testing.T) {
	l := NewListing(sampleCatalog(), noLimit(), 5)
	l.SetPage(7)
	v := l.View()
	assert.Empty(t, v.Items)
	assert.Equal(t, 8, v.Total)
}

func TestNewListing_MinimumPageSize(t *testing.T) {
	l := NewListing(nil, noLimit(), 0)
	assert.Equal(t, 1, l.PageSize())
}
