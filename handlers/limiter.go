package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/metrics"
)

// GlobalRateLimiter is the global rate limiter middleware
var GlobalRateLimiter = limiter.New(limiter.Config{
	Max:        config.ServerRateLimitMax,
	Expiration: config.ServerRateLimitExp,
	Next: func(c *fiber.Ctx) bool {
		// health checks and scrapes are never limited
		return c.Path() == "/health" || c.Path() == "/metrics"
	},
})

// InquiryRateLimiter is a strict per-IP limiter for the contact form
var InquiryRateLimiter = limiter.New(limiter.Config{
	Max:        config.InquiryRateLimitMax,
	Expiration: config.InquiryRateLimitExp,
	KeyGenerator: func(c *fiber.Ctx) string {
		return c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		metrics.Inquiry("limited")
		return fiber.NewError(fiber.StatusTooManyRequests,
			"Too many requests. Please try again later.")
	},
})
