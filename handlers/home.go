package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/homepage"
	"github.com/showroom-motors/site/ui"
)

const featuredCars = 6

func HandleHome(c *fiber.Ctx) error {
	slides, err := homepage.GetSlides(false)
	if err != nil {
		log.Printf("[home] Error loading carousel: %v", err)
		return fiber.ErrInternalServerError
	}
	logos, err := homepage.GetLogos()
	if err != nil {
		log.Printf("[home] Error loading logos: %v", err)
		return fiber.ErrInternalServerError
	}
	featured, err := car.GetFeatured(featuredCars)
	if err != nil {
		log.Printf("[home] Error loading featured cars: %v", err)
		return fiber.ErrInternalServerError
	}

	return render(c, ui.HomePage(viewer(c), slides, logos,
		car.ToCatalog(featured, b2util.ThumbnailURL), savedIn(c)))
}
