package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/catalog"
	"github.com/showroom-motors/site/ui"
	"github.com/showroom-motors/site/vector"
)

// similarTimeout bounds the vector lookup so a slow index never holds up
// the page.
const similarTimeout = 2 * time.Second

// findCar resolves a car by slug, accepting a numeric ID as well.
func findCar(param string) (car.Car, bool) {
	if c, ok := car.GetBySlug(param); ok {
		return c, true
	}
	if id, err := strconv.Atoi(param); err == nil && id > 0 {
		return car.Get(id)
	}
	return car.Car{}, false
}

func HandleCarDetail(c *fiber.Ctx) error {
	found, ok := findCar(c.Params("slug"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}

	images, err := car.GetImages(found.ID)
	if err != nil {
		log.Printf("[car] Error loading images for %d: %v", found.ID, err)
	}
	variations, err := car.GetVariations(found.ID)
	if err != nil {
		log.Printf("[car] Error loading variations for %d: %v", found.ID, err)
	}

	return render(c, ui.CarDetailPage(viewer(c), ui.CarDetail{
		Car:        found,
		Images:     images,
		Variations: variations,
		Similar:    similarCars(c.UserContext(), found.ID),
		Saved:      savedIn(c),
	}))
}

// similarCars returns the cars nearest to carID in the vector index. Any
// failure just leaves the section out.
func similarCars(ctx context.Context, carID int) []catalog.Car {
	ctx, cancel := context.WithTimeout(ctx, similarTimeout)
	defer cancel()

	ids, err := vector.SimilarCarIDs(ctx, carID)
	if err != nil {
		log.Printf("[vector] Similar cars for %d: %v", carID, err)
		return nil
	}
	if len(ids) == 0 {
		return nil
	}
	cars, err := car.GetByIDs(ids)
	if err != nil {
		log.Printf("[car] Error loading similar cars for %d: %v", carID, err)
		return nil
	}
	return car.ToCatalog(cars, b2util.ThumbnailURL)
}
