package handlers

import (
	"errors"
	"strconv"

	"rebelsrev/internal/middleware"
	"rebelsrev/internal/services/stats"
	"rebelsrev/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService stats.Service
}

func NewStatsHandler(statsService stats.Service) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get aggregates clicks and conversions over the requested lookback window.
// Affiliates may only query their own affiliate ID.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var affiliateID *uint
	if raw := c.Query("affiliateId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return utils.BadRequest(c, "invalid affiliateId")
		}
		v := uint(id)
		affiliateID = &v
	}

	report, err := h.statsService.Query(c.Context(), affiliateID, c.Query("period", "30d"), claims)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrForbidden):
			return utils.Forbidden(c, "access denied")
		case errors.Is(err, stats.ErrInvalidPeriod):
			return utils.BadRequest(c, "period must be one of 1d, 7d, 30d")
		default:
			return utils.InternalError(c, "failed to get stats")
		}
	}

	return utils.Success(c, report)
}
