package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/db"
	"github.com/showroom-motors/site/metrics"
	"github.com/showroom-motors/site/vector"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := map[string]string{
		"status":  "ok",
		"catalog": "local",
		"vectors": "disabled",
	}
	if config.CatalogURL != "" {
		health["catalog"] = "remote"
	}
	if vector.Enabled() {
		health["vectors"] = "enabled"
	}

	// Check database connectivity
	if err := db.Get().Ping(); err != nil {
		health["status"] = "unhealthy"
		health["database"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["database"] = "up"
	}

	c.Set("Content-Type", "application/json")
	return json.NewEncoder(c).Encode(health)
}

// HandleMetrics serves the Prometheus registry.
var HandleMetrics = adaptor.HTTPHandler(metrics.Handler())
