package handlers

import (
	"errors"
	"strconv"

	"rebelsrev/internal/repositories"
	"rebelsrev/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CampaignHandler struct {
	campaigns repositories.CampaignRepository
}

func NewCampaignHandler(campaigns repositories.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// List returns the active campaigns.
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.campaigns.ListActive(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list campaigns")
	}
	return utils.Success(c, fiber.Map{"campaigns": campaigns})
}

// Get returns one campaign by id.
func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid campaign id")
	}

	campaign, err := h.campaigns.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			return utils.NotFound(c, "campaign not found")
		}
		return utils.InternalError(c, "failed to get campaign")
	}
	return utils.Success(c, campaign)
}
