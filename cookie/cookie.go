package cookie

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/wishlist"
)

const (
	wishlistCookie = "wishlist"
	langCookie     = "lang"
	authCookie     = "auth_token"
)

func GetWishlist(c *fiber.Ctx) wishlist.List {
	return wishlist.Parse(c.Cookies(wishlistCookie))
}

func SetWishlist(c *fiber.Ctx, l wishlist.List) {
	c.Cookie(&fiber.Cookie{
		Name:     wishlistCookie,
		Value:    l.Encode(),
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Lax",
	})
}

// GetLang returns the raw language cookie, "" when unset.
func GetLang(c *fiber.Ctx) string {
	return c.Cookies(langCookie)
}

func SetLang(c *fiber.Ctx, lang string) {
	c.Cookie(&fiber.Cookie{
		Name:     langCookie,
		Value:    lang,
		MaxAge:   365 * 24 * 60 * 60,
		Secure:   true,
		Path:     "/",
		SameSite: "Lax",
	})
}

func SetJWT(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
		MaxAge:   int(config.JWTExpiration / time.Second),
	})
}

func ClearJWT(c *fiber.Ctx) {
	c.ClearCookie(authCookie)
}

func GetJWT(c *fiber.Ctx) string {
	return c.Cookies(authCookie)
}
