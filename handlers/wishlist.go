package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/cookie"
	"github.com/showroom-motors/site/ui"
)

func HandleWishlist(c *fiber.Ctx) error {
	cars, err := car.GetByIDs(cookie.GetWishlist(c).IDs())
	if err != nil {
		log.Printf("[wishlist] Error loading cars: %v", err)
		return fiber.ErrInternalServerError
	}
	return render(c, ui.WishlistPage(viewer(c), car.ToCatalog(cars, b2util.ThumbnailURL)))
}

// HandleWishlistToggle adds or removes a car and re-renders its button.
func HandleWishlistToggle(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if _, ok := car.Get(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}

	list, saved := cookie.GetWishlist(c).Toggle(id)
	cookie.SetWishlist(c, list)

	if !isHTMX(c) {
		return c.Redirect("/wishlist", fiber.StatusSeeOther)
	}
	return render(c, ui.WishlistButton(viewer(c), id, saved))
}
