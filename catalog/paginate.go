package catalog

// Paginate returns the 1-indexed page of size elements. Pages outside the
// available range, including page < 1, are empty.
func Paginate(cars []Car, page, size int) []Car {
	if page < 1 || size < 1 {
		return []Car{}
	}
	start := (page - 1) * size
	if start >= len(cars) {
		return []Car{}
	}
	end := min(start+size, len(cars))
	return cars[start:end:end]
}

// TotalPages is ceil(n / size). It is zero for an empty list.
func TotalPages(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}
	return (n + size - 1) / size
}
