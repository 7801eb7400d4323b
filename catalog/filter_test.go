package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	camry = Car{ID: 1, Price: 100000, Year: 2020, Brand: "Toyota", Model: "Camry",
		FuelTypes: []string{"petrol"}, Transmission: "auto", Seats: 5}
	accord = Car{ID: 2, Price: 200000, Year: 2022, Brand: "Honda", Model: "Accord",
		FuelTypes: []string{"petrol"}, Transmission: "auto", Seats: 5}
)

func twoCars() []Car {
	return []Car{camry, accord}
}

func sampleCatalog() []Car {
	return []Car{
		camry,
		accord,
		{ID: 3, Price: 150000, Year: 2021, Brand: "Toyota", Model: "Prius",
			FuelTypes: []string{"hybrid", "petrol"}, Transmission: "auto", Seats: 5},
		{ID: 4, Price: 320000, Year: 2023, Brand: "BMW", Model: "X5",
			FuelTypes: []string{"diesel"}, Transmission: "auto", Seats: 7},
		{ID: 5, Price: 65000, Year: 2018, Brand: "Nissan", Model: "Sunny",
			FuelTypes: []string{"petrol"}, Transmission: "manual", Seats: 5},
		{ID: 6, Price: 410000, Year: 2024, Brand: "Tesla", Model: "Model X",
			FuelTypes: []string{"electric"}, Transmission: "auto", Seats: 7},
		{ID: 7, Price: 90000, Year: 2020, Brand: "toyota", Model: "Yaris",
			Transmission: "manual", Seats: 4},
		{ID: 8, Price: 150000, Year: 2022, Brand: "Honda", Model: "CR-V",
			FuelTypes: []string{"hybrid"}, Transmission: "auto", Seats: 5},
	}
}

func noLimit() Filters {
	return DefaultFilters(1e9)
}

func ids(cars []Car) []int {
	out := make([]int, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ID)
	}
	return out
}

func TestFilter_PriceRange(t *testing.T) {
	f := Filters{Price: PriceRange{Min: 0, Max: 150000}}
	assert.Equal(t, []Car{camry}, Filter(twoCars(), f))
}

func TestFilter_PriceRangeInclusive(t *testing.T) {
	f := Filters{Price: PriceRange{Min: 100000, Max: 200000}}
	assert.Equal(t, []int{1, 2}, ids(Filter(twoCars(), f)))
}

func TestFilter_BrandWithAnyModel(t *testing.T) {
	f := noLimit()
	f.Brands = map[string][]string{"Toyota": {}}
	assert.Equal(t, []Car{camry}, Filter(twoCars(), f))
}

func TestFilter_Brand(t *testing.T) {
	tests := []struct {
		name     string
		brands   map[string][]string
		expected []int
	}{
		{
			name:     "case insensitive brand key",
			brands:   map[string][]string{"TOYOTA": nil},
			expected: []int{1, 3, 7},
		},
		{
			name:     "model restriction",
			brands:   map[string][]string{"Toyota": {"Prius"}},
			expected: []int{3},
		},
		{
			name:     "model match is exact",
			brands:   map[string][]string{"Toyota": {"prius"}},
			expected: []int{},
		},
		{
			name:     "several brands",
			brands:   map[string][]string{"Honda": {"Accord"}, "bmw": {}},
			expected: []int{2, 4},
		},
		{
			name:     "unknown brand excludes everything",
			brands:   map[string][]string{"Lada": {}},
			expected: []int{},
		},
		{
			name:     "colliding keys merge models",
			brands:   map[string][]string{"Toyota": {"Camry"}, "toyota": {"Yaris"}},
			expected: []int{1, 7},
		},
		{
			name:     "colliding keys with any model",
			brands:   map[string][]string{"Toyota": {"Camry"}, "TOYOTA": {}},
			expected: []int{1, 3, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := noLimit()
			f.Brands = tt.brands
			assert.Equal(t, tt.expected, ids(Filter(sampleCatalog(), f)))
		})
	}
}

func TestFilter_OtherDimensions(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Filters)
		expected []int
	}{
		{"year exact", func(f *Filters) { f.Year = "2020" }, []int{1, 7}},
		{"year with spaces", func(f *Filters) { f.Year = " 2022 " }, []int{2, 8}},
		{"malformed year matches nothing", func(f *Filters) { f.Year = "twenty" }, []int{}},
		{"fuel intersection", func(f *Filters) { f.FuelTypes = []string{"hybrid"} }, []int{3, 8}},
		{"fuel any of", func(f *Filters) { f.FuelTypes = []string{"diesel", "electric"} }, []int{4, 6}},
		{"transmission", func(f *Filters) { f.Transmissions = []string{"manual"} }, []int{5, 7}},
		{"seats", func(f *Filters) { f.Seats = []int{7, 4} }, []int{4, 6, 7}},
		{"combined", func(f *Filters) {
			f.Transmissions = []string{"auto"}
			f.Seats = []int{5}
			f.Price = PriceRange{Min: 120000, Max: 250000}
		}, []int{2, 3, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := noLimit()
			tt.mutate(&f)
			assert.Equal(t, tt.expected, ids(Filter(sampleCatalog(), f)))
		})
	}
}

func TestFilter_EmptyMeansNoConstraint(t *testing.T) {
	f := Filters{
		Price:         PriceRange{Min: 0, Max: 1e9},
		Brands:        map[string][]string{},
		FuelTypes:     []string{},
		Transmissions: []string{},
		Seats:         []int{},
	}
	assert.Equal(t, sampleCatalog(), Filter(sampleCatalog(), f))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	cars := sampleCatalog()
	f := noLimit()
	f.Brands = map[string][]string{"Honda": nil}
	Filter(cars, f)
	assert.Equal(t, sampleCatalog(), cars)
}

func TestFilter_Subset(t *testing.T) {
	cars := sampleCatalog()
	for _, f := range filterStates() {
		result := Filter(cars, f)
		for _, c := range result {
			assert.Contains(t, cars, c)
		}
		assert.LessOrEqual(t, len(result), len(cars))
	}
}

func TestFilter_Monotonic(t *testing.T) {
	relaxations := map[string]func(*Filters){
		"price":        func(f *Filters) { f.Price = PriceRange{Min: 0, Max: 1e9} },
		"brands":       func(f *Filters) { f.Brands = nil },
		"year":         func(f *Filters) { f.Year = "" },
		"fuel":         func(f *Filters) { f.FuelTypes = nil },
		"transmission": func(f *Filters) { f.Transmissions = nil },
		"seats":        func(f *Filters) { f.Seats = nil },
	}

	cars := sampleCatalog()
	for _, f := range filterStates() {
		strict := Filter(cars, f)
		for name, relax := range relaxations {
			relaxed := f
			relax(&relaxed)
			wider := Filter(cars, relaxed)
			for _, c := range strict {
				assert.Contains(t, wider, c, "relaxing %s dropped car %d", name, c.ID)
			}
		}
	}
}

func TestFilters_Matches(t *testing.T) {
	f := noLimit()
	f.Brands = map[string][]string{"toyota": {"Camry"}}
	assert.True(t, f.Matches(camry))
	assert.False(t, f.Matches(accord))
}

func filterStates() []Filters {
	return []Filters{
		noLimit(),
		{Price: PriceRange{Min: 80000, Max: 160000}},
		{Price: PriceRange{Min: 0, Max: 1e9}, Brands: map[string][]string{"Toyota": {}}, Seats: []int{5}},
		{Price: PriceRange{Min: 0, Max: 300000}, FuelTypes: []string{"petrol", "hybrid"}, Transmissions: []string{"auto"}},
		{Price: PriceRange{Min: 0, Max: 1e9}, Year: "2022", Brands: map[string][]string{"Honda": {"CR-V"}}},
		{Price: PriceRange{Min: 50000, Max: 500000}, Seats: []int{7}, FuelTypes: []string{"electric"}},
	}
}
