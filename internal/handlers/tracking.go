package handlers

import (
	"errors"
	"strconv"

	"rebelsrev/internal/services/conversion"
	"rebelsrev/internal/services/revenue"
	"rebelsrev/internal/services/tracking"
	"rebelsrev/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TrackingHandler struct {
	trackingService tracking.Service
	processor       *conversion.Processor
}

func NewTrackingHandler(trackingService tracking.Service, processor *conversion.Processor) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
		processor:       processor,
	}
}

// GenerateLink issues a tracking link. Public: links are stateless until a
// click occurs.
func (h *TrackingHandler) GenerateLink(c *fiber.Ctx) error {
	var input struct {
		AffiliateID uint   `json:"affiliateId"`
		CampaignID  uint   `json:"campaignId"`
		SubID       string `json:"subId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.AffiliateID == 0 || input.CampaignID == 0 {
		return utils.BadRequest(c, "affiliateId and campaignId are required")
	}

	link := h.trackingService.GenerateLink(input.AffiliateID, input.CampaignID, input.SubID)
	return utils.Success(c, link)
}

// Click records a tracked visit and returns the redirect target. The
// redirect degrades to the fallback URL rather than failing the visitor.
func (h *TrackingHandler) Click(c *fiber.Ctx) error {
	affiliateID, err1 := strconv.ParseUint(c.Query("aff"), 10, 32)
	campaignID, err2 := strconv.ParseUint(c.Query("camp"), 10, 32)
	if err1 != nil || err2 != nil {
		return utils.BadRequest(c, "aff and camp query parameters are required")
	}

	result, err := h.trackingService.RecordClick(c.Context(), tracking.ClickInput{
		TrackingID:  c.Params("trackingId"),
		AffiliateID: uint(affiliateID),
		CampaignID:  uint(campaignID),
		SubID:       c.Query("sub"),
		IPAddress:   c.IP(),
		UserAgent:   c.Get("User-Agent"),
		Country:     c.Get("CF-IPCountry", "US"),
	})
	if err != nil {
		if errors.Is(err, tracking.ErrInvalidInput) {
			return utils.BadRequest(c, "invalid tracking parameters")
		}
		return utils.InternalError(c, "failed to track click")
	}

	return utils.Success(c, fiber.Map{
		"success":     true,
		"clickId":     result.Click.ID,
		"redirectUrl": result.RedirectURL,
		"message":     "Click tracked successfully",
	})
}

// Conversion converts a click: applies the revenue split and updates the
// affiliate balances. 400 when the click is missing or already converted.
func (h *TrackingHandler) Conversion(c *fiber.Ctx) error {
	var input struct {
		ClickID        uint            `json:"clickId"`
		Revenue        decimal.Decimal `json:"revenue"`
		ConversionType string          `json:"conversionType"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.ClickID == 0 {
		return utils.BadRequest(c, "clickId is required")
	}

	result, err := h.processor.Convert(c.Context(), input.ClickID, input.Revenue, input.ConversionType)
	if err != nil {
		switch {
		case errors.Is(err, conversion.ErrInvalidAmount):
			return utils.BadRequest(c, "invalid revenue amount")
		case errors.Is(err, conversion.ErrClickNotFound), errors.Is(err, conversion.ErrAlreadyConverted):
			return utils.BadRequest(c, "invalid or already converted click")
		default:
			return utils.InternalError(c, "failed to track conversion")
		}
	}

	return utils.Success(c, fiber.Map{
		"success":          true,
		"totalRevenue":     revenue.Round2(result.TotalRevenue),
		"affiliateRevenue": revenue.Round2(result.AffiliateRevenue),
		"message":          "Conversion tracked successfully",
	})
}
