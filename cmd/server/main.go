// Package main is the entry point for the RebelsRev API server.
package main

import (
	"context"
	"log"
	"time"

	"rebelsrev/internal/config"
	"rebelsrev/internal/repositories"
	"rebelsrev/internal/repositories/cache"
	"rebelsrev/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	db, err := repositories.OpenDB(repositories.DBConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repositories.CloseDB(db)

	// Redis backs the campaign redirect cache on the click path. Without
	// REDIS_HOST the server runs with redirect lookups going straight to
	// the store.
	var cacheService *cache.CacheService
	if redisHost := config.GetEnv("REDIS_HOST", ""); redisHost != "" {
		redisClient := cache.NewRedisClient(&cache.RedisConfig{
			Host:     redisHost,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		cacheService = cache.NewCacheService(redisClient, config.GetDurationEnv("CACHE_TTL", 10*time.Minute))
		defer func() {
			if err := cacheService.Close(); err != nil {
				log.Printf("failed to close redis connection: %v", err)
			}
		}()

		if err := cacheService.FlushAll(context.Background()); err != nil {
			log.Printf("failed to flush redis cache: %v", err)
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/auth", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("AUTH_RATE_LIMIT", 5),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, db, cacheService)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3001")))
}
