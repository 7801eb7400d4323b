package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/cookie"
	"github.com/showroom-motors/site/i18n"
)

// HandleLang stores the language choice and returns to the page it was
// made on. Only same-site paths are followed.
func HandleLang(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if !i18n.IsSupported(lang) {
		return fiber.NewError(fiber.StatusNotFound, "Unsupported language")
	}
	cookie.SetLang(c, lang)
	return c.Redirect(safeNext(c.Query("next")), fiber.StatusSeeOther)
}

func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
