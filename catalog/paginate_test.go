package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_SecondPageOfOne(t *testing.T) {
	sorted := Sort(twoCars(), SortRelevance)
	assert.Equal(t, []Car{accord}, Paginate(sorted, 2, 1))
}

func TestPaginate(t *testing.T) {
	cars := sampleCatalog()
	tests := []struct {
		name     string
		page     int
		size     int
		expected []int
	}{
		{"first page", 1, 3, []int{1, 2, 3}},
		{"middle page", 2, 3, []int{4, 5, 6}},
		{"short last page", 3, 3, []int{7, 8}},
		{"past the end", 4, 3, []int{}},
		{"page zero", 0, 3, []int{}},
		{"negative page", -1, 3, []int{}},
		{"zero size", 1, 0, []int{}},
		{"size larger than list", 1, 20, []int{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Paginate(cars, tt.page, tt.size)))
		})
	}
}

func TestPaginate_Reconstructs(t *testing.T) {
	cars := sampleCatalog()
	for size := 1; size <= len(cars)+1; size++ {
		var joined []Car
		for page := 1; page <= TotalPages(len(cars), size); page++ {
			joined = append(joined, Paginate(cars, page, size)...)
		}
		assert.Equal(t, cars, joined, "size %d", size)
	}
}

func TestPaginate_AppendDoesNotClobber(t *testing.T) {
	cars := sampleCatalog()
	page := Paginate(cars, 1, 2)
	_ = append(page, Car{ID: 99})
	assert.Equal(t, 3, cars[2].ID)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(1, 9))
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 0, TotalPages(10, 0))
}
