package local

import "github.com/gofiber/fiber/v2"

func GetAdminID(c *fiber.Ctx) int {
	adminID, _ := c.Locals("adminID").(int)
	return adminID
}

func SetAdminID(c *fiber.Ctx, adminID int) {
	c.Locals("adminID", adminID)
}

func SetAdminName(c *fiber.Ctx, name string) {
	c.Locals("adminName", name)
}

func GetAdminName(c *fiber.Ctx) string {
	name, _ := c.Locals("adminName").(string)
	return name
}

// GetLang returns the language negotiated for this request.
func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	if lang == "" {
		return "en"
	}
	return lang
}

func SetLang(c *fiber.Ctx, lang string) {
	c.Locals("lang", lang)
}
