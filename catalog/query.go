package catalog

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names used by the listing page.
const (
	ParamMinPrice     = "min_price"
	ParamMaxPrice     = "max_price"
	ParamBrand        = "brand"
	ParamModel        = "model"
	ParamYear         = "year"
	ParamFuel         = "fuel"
	ParamTransmission = "transmission"
	ParamSeats        = "seats"
	ParamSort         = "sort"
	ParamPage         = "page"
)

// ModelValue joins a brand and model into one form value, e.g.
// "Toyota:Camry".
func ModelValue(brand, model string) string {
	return brand + ":" + model
}

// ParseQuery reads the filter, sort and page selections from a listing URL.
// Unparseable numbers are ignored. Picking a model selects its brand too.
func ParseQuery(q url.Values, maxPrice float64) (Filters, SortOption, int) {
	f := DefaultFilters(maxPrice)

	if v, err := strconv.ParseFloat(q.Get(ParamMinPrice), 64); err == nil && v >= 0 {
		f.Price.Min = v
	}
	if v, err := strconv.ParseFloat(q.Get(ParamMaxPrice), 64); err == nil && v >= 0 {
		f.Price.Max = v
	}

	for _, b := range q[ParamBrand] {
		if b = strings.TrimSpace(b); b != "" {
			if f.Brands == nil {
				f.Brands = make(map[string][]string)
			}
			if _, ok := f.Brands[b]; !ok {
				f.Brands[b] = nil
			}
		}
	}
	for _, m := range q[ParamModel] {
		b, model, ok := strings.Cut(m, ":")
		b, model = strings.TrimSpace(b), strings.TrimSpace(model)
		if !ok || b == "" || model == "" {
			continue
		}
		if f.Brands == nil {
			f.Brands = make(map[string][]string)
		}
		if !slices.Contains(f.Brands[b], model) {
			f.Brands[b] = append(f.Brands[b], model)
		}
	}

	f.Year = strings.TrimSpace(q.Get(ParamYear))
	f.FuelTypes = nonEmpty(q[ParamFuel])
	f.Transmissions = nonEmpty(q[ParamTransmission])
	for _, s := range q[ParamSeats] {
		if n, err := strconv.Atoi(s); err == nil {
			f.Seats = append(f.Seats, n)
		}
	}

	page, err := strconv.Atoi(q.Get(ParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	return f, ParseSortOption(q.Get(ParamSort)), page
}

// Query encodes f, opt and page back into listing parameters. Defaults are
// left out so an unfiltered first page has an empty query.
func (f Filters) Query(maxPrice float64, opt SortOption, page int) url.Values {
	q := url.Values{}
	if f.Price.Min > 0 {
		q.Set(ParamMinPrice, strconv.FormatFloat(f.Price.Min, 'f', -1, 64))
	}
	if f.Price.Max != maxPrice {
		q.Set(ParamMaxPrice, strconv.FormatFloat(f.Price.Max, 'f', -1, 64))
	}

	brands := make([]string, 0, len(f.Brands))
	for b := range f.Brands {
		brands = append(brands, b)
	}
	slices.Sort(brands)
	for _, b := range brands {
		models := f.Brands[b]
		if len(models) == 0 {
			q.Add(ParamBrand, b)
			continue
		}
		for _, m := range models {
			q.Add(ParamModel, ModelValue(b, m))
		}
	}

	if f.Year != "" {
		q.Set(ParamYear, f.Year)
	}
	for _, v := range f.FuelTypes {
		q.Add(ParamFuel, v)
	}
	for _, v := range f.Transmissions {
		q.Add(ParamTransmission, v)
	}
	for _, n := range f.Seats {
		q.Add(ParamSeats, strconv.Itoa(n))
	}
	if opt != "" && opt != SortRelevance {
		q.Set(ParamSort, string(opt))
	}
	if page > 1 {
		q.Set(ParamPage, strconv.Itoa(page))
	}
	return q
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
