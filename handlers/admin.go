package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/brand"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/homepage"
	"github.com/showroom-motors/site/inquiry"
	"github.com/showroom-motors/site/ui"
	"github.com/showroom-motors/site/user"
	"github.com/showroom-motors/site/vector"
	g "maragu.dev/gomponents"
)

// adminHandler is a generic function that handles admin section pages.
// T is the entity type listed by the section; getData loads the rows and
// sectionComponent renders them.
func adminHandler[T any](c *fiber.Ctx, sectionName string,
	getData func() ([]T, error),
	sectionComponent func([]T) g.Node) error {
	data, err := getData()
	if err != nil {
		log.Printf("[admin] Error loading %s: %v", sectionName, err)
		return fiber.ErrInternalServerError
	}
	return renderAdmin(c, sectionName, sectionComponent(data))
}

// renderAdmin sends just the section to htmx tab switches and the whole
// dashboard page otherwise.
func renderAdmin(c *fiber.Ctx, sectionName string, content g.Node) error {
	if isHTMX(c) {
		return render(c, ui.AdminSectionPage(sectionName, content))
	}
	return render(c, ui.AdminPage(viewer(c), sectionName, content))
}

func allSlides() ([]homepage.Slide, error) {
	return homepage.GetSlides(true)
}

func HandleAdminCars(c *fiber.Ctx) error {
	brands, err := brand.GetAll()
	if err != nil {
		log.Printf("[admin] Error loading brands: %v", err)
		return fiber.ErrInternalServerError
	}
	return adminHandler(c, "cars", car.GetAll, func(cars []car.Car) g.Node {
		return ui.AdminCarsSection(cars, brands)
	})
}

func HandleAdminCar(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	found, ok := car.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	brands, err := brand.GetAll()
	if err != nil {
		return err
	}
	variations, err := car.GetVariations(id)
	if err != nil {
		return err
	}
	images, err := car.GetImages(id)
	if err != nil {
		return err
	}
	return renderAdmin(c, "cars", ui.AdminCarSection(ui.AdminCarDetail{
		Car:        found,
		Brands:     brands,
		Variations: variations,
		Images:     images,
	}))
}

func HandleAdminBrands(c *fiber.Ctx) error {
	return adminHandler(c, "brands", brand.GetAll, ui.AdminBrandsSection)
}

func HandleAdminCarousel(c *fiber.Ctx) error {
	return adminHandler(c, "carousel", allSlides, ui.AdminCarouselSection)
}

func HandleAdminLogos(c *fiber.Ctx) error {
	return adminHandler(c, "logos", homepage.GetLogos, ui.AdminLogosSection)
}

func HandleAdminInquiries(c *fiber.Ctx) error {
	return adminHandler(c, "inquiries", inquiry.GetAll, ui.AdminInquiriesSection)
}

func HandleAdminUsers(c *fiber.Ctx) error {
	return adminHandler(c, "users", user.GetAllUsers, ui.AdminUsersSection)
}

// cacheStats lists every in-memory cache with the name used by its clear
// endpoint.
func cacheStats() []ui.NamedStats {
	return []ui.NamedStats{
		{Name: "brands", Title: "Brand Cache", Stats: brand.CacheStats()},
		{Name: "b2", Title: "B2 Token Cache", Stats: b2util.CacheStats()},
		{Name: "similar", Title: "Similar Cars Cache", Stats: vector.CacheStats()},
	}
}

func HandleAdminCaches(c *fiber.Ctx) error {
	p := vector.GetProcessor()
	return renderAdmin(c, "caches", ui.AdminCachesSection(cacheStats(), p.QueueSize(), p.IsRunning()))
}
