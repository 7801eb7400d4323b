package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/ui"
)

// ParseIntParam parses an integer parameter from the URL with consistent error handling
func ParseIntParam(c *fiber.Ctx, paramName string) (int, error) {
	value, err := c.ParamsInt(paramName)
	if err != nil || value <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid parameter: "+paramName)
	}
	return value, nil
}

// ParseFormInt parses an optional form value as an integer. An empty field is 0.
func ParseFormInt(c *fiber.Ctx, fieldName string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(fieldName))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid integer value for field: "+fieldName)
	}
	return value, nil
}

// ParseQueryInt parses an integer query parameter, returning def when absent.
func ParseQueryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid integer value for parameter: "+name)
	}
	return value, nil
}

// ValidationErrorResponse returns a validation error response
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return render(c, ui.ValidationError(message))
}

// badRequest wraps a validation failure so the error handler reports it as a 400.
func badRequest(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}
