package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/cookie"
	"github.com/showroom-motors/site/i18n"
	"github.com/showroom-motors/site/jwt"
	"github.com/showroom-motors/site/local"
	"github.com/showroom-motors/site/user"
)

// LangMiddleware picks the page language from the lang cookie, falling back
// to Accept-Language.
func LangMiddleware(c *fiber.Ctx) error {
	local.SetLang(c, i18n.Negotiate(cookie.GetLang(c), c.Get(fiber.HeaderAcceptLanguage)))
	return c.Next()
}

// JWTMiddleware is a middleware that validates a JWT token and sets the admin in the context.
func JWTMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie
	tokenString := cookie.GetJWT(c)
	if tokenString == "" {
		clearAdmin(c)
		return c.Next()
	}

	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		// Invalid token, clear cookie
		cookie.ClearJWT(c)
		clearAdmin(c)
		return c.Next()
	}

	local.SetAdminID(c, claims.UserID)
	local.SetAdminName(c, claims.UserName)
	return c.Next()
}

func clearAdmin(c *fiber.Ctx) {
	local.SetAdminID(c, 0)
	local.SetAdminName(c, "")
}

// AdminRequired is a middleware that requires a signed-in, non-archived admin.
func AdminRequired(c *fiber.Ctx) error {
	adminID := local.GetAdminID(c)
	if adminID == 0 {
		return denyAdmin(c)
	}

	// The account may have been archived since the token was issued
	u, err := user.GetUser(adminID)
	if err != nil || u.IsArchived() {
		cookie.ClearJWT(c)
		clearAdmin(c)
		return denyAdmin(c)
	}

	return c.Next()
}

func denyAdmin(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") && !isHTMX(c) {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return redirectToLogin(c)
}

func redirectToLogin(c *fiber.Ctx) error {
	// For HTMX requests, return a redirect response that HTMX can handle
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
