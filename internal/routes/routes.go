// Package routes defines the API routing configuration. It constructs the
// repositories, services and handlers and wires them onto the fiber app.
package routes

import (
	"rebelsrev/internal/config"
	"rebelsrev/internal/handlers"
	"rebelsrev/internal/middleware"
	"rebelsrev/internal/repositories"
	"rebelsrev/internal/repositories/cache"
	"rebelsrev/internal/services/affiliate"
	"rebelsrev/internal/services/auth"
	"rebelsrev/internal/services/conversion"
	"rebelsrev/internal/services/stats"
	"rebelsrev/internal/services/tracking"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires all application routes. The store handle and cache are
// passed in explicitly; nothing here owns their lifecycle.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	userRepo := repositories.NewUserRepository(db)
	affiliateRepo := repositories.NewAffiliateRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	clickRepo := repositories.NewClickRepository(db)

	authService := auth.NewService(userRepo, affiliateRepo)
	affiliateService := affiliate.NewService(affiliateRepo)
	statsService := stats.NewService(clickRepo, affiliateRepo)

	var redirectCache tracking.RedirectCache
	if cacheService != nil {
		redirectCache = cacheService
	}
	trackingService := tracking.NewService(clickRepo, campaignRepo, affiliateRepo, redirectCache, tracking.Config{
		TrackingDomain:     config.GetEnv("TRACKING_DOMAIN", "https://track.rebelsrev.com"),
		DefaultRedirectURL: config.GetEnv("DEFAULT_REDIRECT_URL", "https://example-offer.com"),
		StoreTimeout:       config.GetDurationEnv("STORE_TIMEOUT", tracking.DefaultStoreTimeout),
	})
	processor := conversion.NewProcessor(db)

	authHandler := handlers.NewAuthHandler(authService)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateService)
	campaignHandler := handlers.NewCampaignHandler(campaignRepo)
	trackingHandler := handlers.NewTrackingHandler(trackingService, processor)
	statsHandler := handlers.NewStatsHandler(statsService)

	app.Get("/health", handlers.Health)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "RebelsRev Network API",
			"version": "1.0.0",
		})
	})

	api := app.Group("/api")

	// Public endpoints
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/tracking/generate-link", trackingHandler.GenerateLink)
	api.Post("/tracking/click/:trackingId", trackingHandler.Click)
	api.Post("/tracking/conversion", trackingHandler.Conversion)

	// Authenticated endpoints
	protected := api.Use(middleware.Auth)
	protected.Get("/affiliates", middleware.AdminOnly, affiliateHandler.List)
	protected.Get("/affiliates/:id", affiliateHandler.Get)
	protected.Get("/campaigns", campaignHandler.List)
	protected.Get("/campaigns/:id", campaignHandler.Get)
	protected.Get("/stats", statsHandler.Get)
}
