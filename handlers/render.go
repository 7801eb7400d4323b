package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/cookie"
	"github.com/showroom-motors/site/local"
	"github.com/showroom-motors/site/ui"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return component.Render(c.Response().BodyWriter())
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") != ""
}

// viewer collects the per-request state every page needs.
func viewer(c *fiber.Ctx) ui.Viewer {
	return ui.Viewer{
		Lang:      local.GetLang(c),
		Path:      c.OriginalURL(),
		AdminName: local.GetAdminName(c),
		Wishlist:  len(cookie.GetWishlist(c)),
	}
}

// savedIn reports whether a car ID is on the visitor's wishlist.
func savedIn(c *fiber.Ctx) func(int) bool {
	list := cookie.GetWishlist(c)
	return list.Contains
}

// apiResponse is the JSON envelope used by every /api endpoint.
type apiResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func jsonSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(apiResponse{Status: "success", Data: data})
}
