package catalog

// Listing is the state of one catalog page view: the fetched cars plus the
// user's filter, sort and page selections. Every derived value is recomputed
// from these inputs by View.
type Listing struct {
	cars     []Car
	filters  Filters
	sort     SortOption
	page     int
	pageSize int
}

// NewListing returns a listing on page 1 with relevance order.
func NewListing(cars []Car, filters Filters, pageSize int) *Listing {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Listing{
		cars:     cars,
		filters:  filters,
		sort:     SortRelevance,
		page:     1,
		pageSize: pageSize,
	}
}

// SetCars replaces the fetched collection.
func (l *Listing) SetCars(cars []Car) {
	l.cars = cars
}

// SetFilters replaces the filter state and returns to page 1.
func (l *Listing) SetFilters(f Filters) {
	l.filters = f
	l.page = 1
}

// SetSort changes the order and returns to page 1.
func (l *Listing) SetSort(opt SortOption) {
	l.sort = opt
	l.page = 1
}

// SetPage moves to page p. Pages below 1 become 1; pages past the end are
// kept and render empty.
func (l *Listing) SetPage(p int) {
	l.page = max(p, 1)
}

func (l *Listing) Filters() Filters { return l.filters }
func (l *Listing) Sort() SortOption { return l.sort }
func (l *Listing) Page() int        { return l.page }
func (l *Listing) PageSize() int    { return l.pageSize }

// View is the derived state rendered by the listing page.
type View struct {
	Items         []Car
	Total         int
	Page          int
	PageSize      int
	TotalPages    int
	Sort          SortOption
	Filters       Filters
	ActiveFilters int
}

// NoResults reports the valid empty state: the fetch succeeded but the
// filters exclude everything.
func (v View) NoResults() bool {
	return v.Total == 0
}

// View runs filter, sort and paginate over the current state.
func (l *Listing) View() View {
	filtered := Filter(l.cars, l.filters)
	sorted := Sort(filtered, l.sort)
	return View{
		Items:         Paginate(sorted, l.page, l.pageSize),
		Total:         len(sorted),
		Page:          l.page,
		PageSize:      l.pageSize,
		TotalPages:    TotalPages(len(sorted), l.pageSize),
		Sort:          l.sort,
		Filters:       l.filters,
		ActiveFilters: l.filters.ActiveFilterCount(),
	}
}
