package handlers

import (
	"errors"
	"strconv"

	"rebelsrev/internal/middleware"
	"rebelsrev/internal/services/affiliate"
	"rebelsrev/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AffiliateHandler struct {
	affiliateService affiliate.Service
}

func NewAffiliateHandler(affiliateService affiliate.Service) *AffiliateHandler {
	return &AffiliateHandler{affiliateService: affiliateService}
}

// List returns every affiliate with the admin projection, including the
// true gross figures. Admin only.
func (h *AffiliateHandler) List(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	views, err := h.affiliateService.List(c.Context(), claims)
	if err != nil {
		if errors.Is(err, affiliate.ErrForbidden) {
			return utils.Forbidden(c, "access denied")
		}
		return utils.InternalError(c, "failed to list affiliates")
	}

	return utils.Success(c, fiber.Map{"affiliates": views})
}

// Get returns one affiliate projected for the caller's role.
func (h *AffiliateHandler) Get(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid affiliate id")
	}

	view, err := h.affiliateService.Get(c.Context(), uint(id), claims)
	if err != nil {
		switch {
		case errors.Is(err, affiliate.ErrNotFound):
			return utils.NotFound(c, "affiliate not found")
		case errors.Is(err, affiliate.ErrForbidden):
			return utils.Forbidden(c, "access denied")
		default:
			return utils.InternalError(c, "failed to get affiliate")
		}
	}

	return utils.Success(c, view)
}
