// Package middleware provides HTTP middleware for the fiber application,
// covering bearer-token authentication and role gates.
package middleware

import (
	"log"
	"strings"

	"rebelsrev/internal/models"
	"rebelsrev/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the bearer token and stores the claims in the request
// context under "claims".
func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

// AdminOnly requires admin claims. It must run after Auth.
func AdminOnly(c *fiber.Ctx) error {
	claims := Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	if !claims.IsAdmin() {
		return utils.Forbidden(c, "access denied")
	}
	return c.Next()
}

// Claims extracts the authenticated claims from the request context, or nil.
func Claims(c *fiber.Ctx) *models.UserClaims {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
