package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/showroom-motors/site/ui"
)

// CustomErrorHandler renders errors as an inline message for htmx requests,
// a JSON envelope for the API and a full error page otherwise.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := utils.StatusMessage(code)

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("[http] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}

	// htmx only swaps 2xx responses, so the message goes out as a 200
	if isHTMX(ctx) {
		ctx.Status(fiber.StatusOK)
		return render(ctx, ui.ValidationError(message))
	}

	if strings.HasPrefix(ctx.Path(), "/api/") {
		return ctx.Status(code).JSON(apiResponse{Status: "error", Message: message})
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(viewer(ctx), code, message))
}
