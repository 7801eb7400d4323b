package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/brand"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/catalog"
	"github.com/showroom-motors/site/homepage"
)

// HandleAPICars serves the full catalog in the envelope the listing's
// remote source reads, so one site can feed another.
func HandleAPICars(c *fiber.Ctx) error {
	cars, err := car.StoreSource{ImageURL: b2util.ThumbnailURL}.FetchCars(c.UserContext())
	if err != nil {
		log.Printf("[api] Error loading catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(catalog.Envelope{
			Status:  "error",
			Data:    []catalog.Car{},
			Message: "Catalog is unavailable",
		})
	}
	return c.JSON(catalog.Envelope{Status: catalog.StatusSuccess, Data: cars})
}

type carDetailResponse struct {
	car.Car
	Variations []car.Variation `json:"variations"`
	Images     []imageResponse `json:"images"`
}

type imageResponse struct {
	car.Image
	Card string `json:"card_url"`
	Full string `json:"full_url"`
}

func imagesResponse(images []car.Image) []imageResponse {
	out := make([]imageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, imageResponse{
			Image: img,
			Card:  b2util.ImageURL(img.Key, b2util.SizeCard),
			Full:  b2util.ImageURL(img.Key, b2util.SizeFull),
		})
	}
	return out
}

func HandleAPICar(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	found, ok := car.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	variations, err := car.GetVariations(id)
	if err != nil {
		return err
	}
	images, err := car.GetImages(id)
	if err != nil {
		return err
	}
	if variations == nil {
		variations = []car.Variation{}
	}
	return jsonSuccess(c, carDetailResponse{Car: found, Variations: variations, Images: imagesResponse(images)})
}

func HandleAPIBrands(c *fiber.Ctx) error {
	brands, err := brand.GetAll()
	if err != nil {
		return err
	}
	if brands == nil {
		brands = []brand.Brand{}
	}
	return jsonSuccess(c, brands)
}

func HandleAPICarousel(c *fiber.Ctx) error {
	slides, err := homepage.GetSlides(false)
	if err != nil {
		return err
	}
	if slides == nil {
		slides = []homepage.Slide{}
	}
	return jsonSuccess(c, slides)
}

func HandleAPILogos(c *fiber.Ctx) error {
	logos, err := homepage.GetLogos()
	if err != nil {
		return err
	}
	if logos == nil {
		logos = []homepage.Logo{}
	}
	return jsonSuccess(c, logos)
}
