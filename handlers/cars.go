package handlers

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/catalog"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/metrics"
	"github.com/showroom-motors/site/ui"
)

// catalogSource is where the listing reads from: the remote catalog endpoint
// when CATALOG_URL is set, otherwise this site's own database.
var catalogSource = func() catalog.Source {
	if config.CatalogURL != "" {
		return catalog.NewHTTPSource(config.CatalogURL, config.CatalogTimeout)
	}
	return car.StoreSource{ImageURL: b2util.ThumbnailURL}
}

// HandleCars serves the listing shell to browsers and the results fragment
// to the htmx request the shell issues on load.
func HandleCars(c *fiber.Ctx) error {
	v := viewer(c)
	if !isHTMX(c) {
		return render(c, ui.CarsPage(v, string(c.Request().URI().QueryString())))
	}
	return render(c, ui.CarsResults(v, loadListing(c, v)))
}

// loadListing fetches the whole catalog once and runs the filter, sort and
// paginate pipeline for the request's query.
func loadListing(c *fiber.Ctx, v ui.Viewer) ui.Listing {
	q, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	filters, sortOpt, page := catalog.ParseQuery(q, config.CatalogMaxPrice)

	ctx, cancel := context.WithTimeout(c.UserContext(), config.CatalogTimeout)
	defer cancel()

	fetcher := catalog.NewFetcher(catalogSource())
	fetcher.Load(ctx)

	// the cause is logged by the fetcher; visitors get the fixed message and
	// a retry link that keeps their selections
	if err := fetcher.Cause(); err != nil {
		metrics.CatalogLoad(err)
		return ui.Listing{
			View:     catalog.View{Filters: filters, Sort: sortOpt, Page: page},
			MaxPrice: config.CatalogMaxPrice,
			Err:      v.T("cars.error"),
		}
	}
	metrics.CatalogLoad(nil)

	cars := fetcher.Cars()
	listing := catalog.NewListing(cars, filters, config.CatalogPageSize)
	listing.SetSort(sortOpt)
	listing.SetPage(page)
	view := listing.View()
	metrics.CatalogResults(view.Total)

	return ui.Listing{
		View:     view,
		Facets:   catalog.FacetsOf(cars),
		MaxPrice: config.CatalogMaxPrice,
		Saved:    savedIn(c),
	}
}
