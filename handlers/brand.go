package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/brand"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/ui"
)

func HandleBrand(c *fiber.Ctx) error {
	b, ok := brand.GetBySlug(c.Params("slug"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Brand not found")
	}
	cars, err := car.GetByBrand(b.ID)
	if err != nil {
		log.Printf("[brand] Error loading cars for brand %d: %v", b.ID, err)
		return fiber.ErrInternalServerError
	}
	return render(c, ui.BrandPage(viewer(c), b, car.ToCatalog(cars, b2util.ThumbnailURL), savedIn(c)))
}
