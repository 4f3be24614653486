package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports API liveness.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "RebelsRev API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
