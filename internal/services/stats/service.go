// Package stats aggregates click and conversion figures over a lookback
// window.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"
	"rebelsrev/internal/services/revenue"

	"github.com/shopspring/decimal"
)

// Service errors.
var (
	ErrForbidden     = errors.New("access denied")
	ErrInvalidPeriod = errors.New("invalid period")
)

var periods = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// Report is the aggregate view over the selected window. Revenue figures
// are rounded for presentation; affiliateRevenue is half the gross per the
// network split policy.
type Report struct {
	Period           string          `json:"period"`
	TotalClicks      int64           `json:"totalClicks"`
	TotalConversions int64           `json:"totalConversions"`
	ConversionRate   decimal.Decimal `json:"conversionRate"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	AffiliateRevenue decimal.Decimal `json:"affiliateRevenue"`
}

// Service aggregates tracking stats with per-role access control.
type Service interface {
	Query(ctx context.Context, affiliateID *uint, period string, claims *models.UserClaims) (*Report, error)
}

type service struct {
	clicks     repositories.ClickRepository
	affiliates repositories.AffiliateRepository
}

func NewService(clicks repositories.ClickRepository, affiliates repositories.AffiliateRepository) Service {
	if clicks == nil {
		panic("click repository is required")
	}
	if affiliates == nil {
		panic("affiliate repository is required")
	}
	return &service{clicks: clicks, affiliates: affiliates}
}

// Query aggregates clicks within the period's lookback window. Affiliate
// callers may only query their own affiliate ID.
func (s *service) Query(ctx context.Context, affiliateID *uint, period string, claims *models.UserClaims) (*Report, error) {
	if claims == nil {
		return nil, ErrForbidden
	}
	if period == "" {
		period = "30d"
	}
	window, ok := periods[period]
	if !ok {
		return nil, ErrInvalidPeriod
	}

	// Affiliate callers are scoped to their own record; omitting the ID
	// means their own stats, never the network-wide aggregate.
	if claims.Role == models.RoleAffiliate {
		own, err := s.affiliates.GetByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, ErrForbidden
		}
		if affiliateID != nil && own.ID != *affiliateID {
			return nil, ErrForbidden
		}
		affiliateID = &own.ID
	}

	since := time.Now().Add(-window)
	agg, err := s.clicks.Aggregate(ctx, affiliateID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	rate := decimal.Zero
	if agg.TotalClicks > 0 {
		rate = decimal.NewFromInt(agg.TotalConversions).
			Div(decimal.NewFromInt(agg.TotalClicks)).
			Mul(decimal.NewFromInt(100))
	}

	return &Report{
		Period:           period,
		TotalClicks:      agg.TotalClicks,
		TotalConversions: agg.TotalConversions,
		ConversionRate:   revenue.Round2(rate),
		TotalRevenue:     revenue.Round2(agg.TotalRevenue),
		AffiliateRevenue: revenue.Round2(agg.TotalRevenue.Mul(decimal.NewFromFloat(0.5))),
	}, nil
}
