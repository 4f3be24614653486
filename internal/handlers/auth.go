package handlers

import (
	"errors"

	"rebelsrev/internal/services/auth"
	"rebelsrev/internal/utils"
	"rebelsrev/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates by username or email and returns a token plus the
// user, and the affiliate profile for affiliate users.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Username == "" || input.Password == "" {
		return utils.BadRequest(c, "username and password are required")
	}

	result, err := h.authService.Login(c.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "invalid credentials")
		}
		return utils.InternalError(c, "authentication failed")
	}

	resp := fiber.Map{
		"token": result.Token,
		"user":  result.User,
	}
	if result.Affiliate != nil {
		resp["affiliate"] = result.Affiliate
	}
	return utils.Success(c, resp)
}

// Register creates a new account and returns a token for it.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input auth.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Required("username", input.Username)
	v.Required("password", input.Password)
	v.MinLength("password", input.Password, 8)
	v.Email("email", input.Email)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return utils.BadRequest(c, "user already exists")
		}
		return utils.InternalError(c, "registration failed")
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}
