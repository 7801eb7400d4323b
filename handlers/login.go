package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/cookie"
	"github.com/showroom-motors/site/jwt"
	"github.com/showroom-motors/site/local"
	"github.com/showroom-motors/site/password"
	"github.com/showroom-motors/site/ui"
	"github.com/showroom-motors/site/user"
)

func HandleLogin(c *fiber.Ctx) error {
	if local.GetAdminID(c) != 0 {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return render(c, ui.LoginPage(viewer(c)))
}

func HandleLogout(c *fiber.Ctx) error {
	cookie.ClearJWT(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func HandleLoginSubmission(c *fiber.Ctx) error {
	name := c.FormValue("name")
	userPassword := c.FormValue("password")

	log.Printf("[auth] Login attempt: name=%s", name)

	u, err := user.GetUserByName(name)
	if err != nil || u.IsArchived() {
		log.Printf("[auth] Login failed: no active account: %s", name)
		return ValidationErrorResponse(c, "Invalid username or password")
	}

	if !password.VerifyPassword(userPassword, u.PasswordHash, u.PasswordSalt) {
		log.Printf("[auth] Login failed: bad password for admin=%s", name)
		return ValidationErrorResponse(c, "Invalid username or password")
	}

	token, err := jwt.GenerateToken(u)
	if err != nil {
		log.Printf("[auth] JWT generation error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, unable to log you in.")
	}
	cookie.SetJWT(c, token)

	log.Printf("[auth] Login successful: adminID=%d, name=%s", u.ID, name)
	return render(c, ui.SuccessMessage("Login successful", "/admin"))
}
