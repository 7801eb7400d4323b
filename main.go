package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/brand"
	"github.com/showroom-motors/site/config"
	"github.com/showroom-motors/site/db"
	h "github.com/showroom-motors/site/handlers"
	"github.com/showroom-motors/site/notification"
	"github.com/showroom-motors/site/vector"
)

func main() {
	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	if err := db.Migrate(); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	// Initialize brand cache
	if err := brand.InitBrandCache(); err != nil {
		log.Fatalf("Failed to initialize brand cache: %v", err)
	}

	// Initialize B2 cache
	if err := b2util.Init(); err != nil {
		log.Fatalf("Failed to initialize B2 cache: %v", err)
	}

	// Initialize similar cars cache
	if err := vector.InitSimilarCache(); err != nil {
		log.Fatalf("Failed to initialize similar cars cache: %v", err)
	}

	initVectors()
	initNotifications()

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerUploadLimit,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(h.GlobalRateLimiter)
	app.Use(h.LangMiddleware)
	app.Use(h.JWTMiddleware)

	// Static files and utility
	app.Static("/", "./static")
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", h.HandleMetrics)

	// Public site
	app.Get("/", h.HandleHome)
	app.Get("/cars", h.HandleCars)
	app.Get("/cars/:slug", h.HandleCarDetail)
	app.Get("/brands/:slug", h.HandleBrand)
	app.Get("/wishlist", h.HandleWishlist)
	app.Post("/wishlist/:id", h.HandleWishlistToggle)
	app.Get("/lang/:lang", h.HandleLang)
	app.Post("/inquiries", h.InquiryRateLimiter, h.HandleInquiry)

	// Admin authentication
	app.Get("/login", h.HandleLogin)
	app.Post("/login", h.HandleLoginSubmission)
	app.Get("/logout", h.HandleLogout)

	// API group
	api := app.Group("/api")
	api.Get("/cars", h.HandleAPICars)
	api.Get("/cars/:id", h.HandleAPICar)
	api.Get("/brands", h.HandleAPIBrands)
	api.Get("/carousel", h.HandleAPICarousel)
	api.Get("/logos", h.HandleAPILogos)

	// Admin dashboard
	admin := app.Group("/admin", h.AdminRequired)
	admin.Get("/", h.HandleAdminCars)
	admin.Get("/cars", h.HandleAdminCars)
	admin.Get("/cars/:id", h.HandleAdminCar)
	admin.Get("/brands", h.HandleAdminBrands)
	admin.Get("/carousel", h.HandleAdminCarousel)
	admin.Get("/logos", h.HandleAdminLogos)
	admin.Get("/inquiries", h.HandleAdminInquiries)
	admin.Get("/users", h.HandleAdminUsers)
	admin.Get("/caches", h.HandleAdminCaches)

	// Admin API group
	adminAPI := api.Group("/admin", h.AdminRequired)
	adminAPI.Post("/brands", h.HandleCreateBrand)
	adminAPI.Put("/brands/:id", h.HandleUpdateBrand)
	adminAPI.Delete("/brands/:id", h.HandleDeleteBrand)

	adminAPI.Post("/cars", h.HandleCreateCar)
	adminAPI.Put("/cars/:id", h.HandleUpdateCar)
	adminAPI.Delete("/cars/:id", h.HandleDeleteCar)
	adminAPI.Post("/cars/:id/variations", h.HandleCreateVariation)
	adminAPI.Post("/cars/:id/images", h.HandleUploadCarImage)
	adminAPI.Put("/variations/:id", h.HandleUpdateVariation)
	adminAPI.Delete("/variations/:id", h.HandleDeleteVariation)
	adminAPI.Post("/images/:id/move", h.HandleMoveCarImage)
	adminAPI.Delete("/images/:id", h.HandleDeleteCarImage)

	adminAPI.Post("/carousel", h.HandleCreateSlide)
	adminAPI.Put("/carousel/:id", h.HandleUpdateSlide)
	adminAPI.Delete("/carousel/:id", h.HandleDeleteSlide)
	adminAPI.Post("/carousel/:id/move", h.HandleMoveSlide)

	adminAPI.Post("/logos", h.HandleCreateLogo)
	adminAPI.Put("/logos/:id", h.HandleUpdateLogo)
	adminAPI.Delete("/logos/:id", h.HandleDeleteLogo)
	adminAPI.Post("/logos/:id/move", h.HandleMoveLogo)

	adminAPI.Get("/inquiries", h.HandleAPIInquiries)
	adminAPI.Delete("/inquiries/:id", h.HandleDeleteInquiry)

	adminAPI.Get("/users", h.HandleAPIUsers)
	adminAPI.Post("/users", h.HandleCreateUser)
	adminAPI.Post("/users/:id/archive", h.HandleArchiveUser)
	adminAPI.Post("/users/:id/restore", h.HandleRestoreUser)
	adminAPI.Post("/password", h.HandleChangePassword)

	adminAPI.Get("/caches", h.HandleAPICaches)
	adminAPI.Post("/caches/:name/clear", h.HandleClearCache)
	adminAPI.Post("/vectors/queue", h.HandleQueueVectors)

	go func() {
		fmt.Printf("Starting server on port %s...\n", config.ServerPort)
		if err := app.Listen(":" + config.ServerPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Printf("[server] Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("[server] Shutdown error: %v", err)
	}
	vector.GetProcessor().Stop()
	if err := db.Close(); err != nil {
		log.Printf("[server] Error closing database: %v", err)
	}
}

// initVectors connects Gemini and Qdrant and starts the embedding queue.
// Similar cars are simply left out when either service is not configured.
func initVectors() {
	if config.GeminiAPIKey == "" || config.QdrantHost == "" {
		log.Printf("[vector] Gemini or Qdrant not configured, similar cars disabled")
		return
	}
	if err := vector.InitGeminiClient(); err != nil {
		log.Printf("[vector] Failed to initialize Gemini client: %v", err)
		return
	}
	if err := vector.InitQdrantClient(); err != nil {
		log.Printf("[vector] Failed to initialize Qdrant client: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := vector.EnsureCollectionExists(ctx); err != nil {
		log.Fatalf("Failed to ensure collection exists: %v", err)
	}
	if err := vector.SetupPayloadIndexes(ctx); err != nil {
		log.Fatalf("Failed to setup payload indexes: %v", err)
	}

	p := vector.GetProcessor()
	p.Start()
	p.QueueCarsWithoutVectors()
}

// initNotifications wires dealer alerts for new inquiries when SMS or
// email delivery is configured.
func initNotifications() {
	svc, err := notification.NewNotificationService()
	if err != nil {
		log.Printf("[notification] Dealer alerts disabled: %v", err)
		return
	}
	h.SetNotifier(svc)
}
