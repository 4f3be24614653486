package repositories

import (
	"context"

	"rebelsrev/internal/models"
)

// AffiliateRepository defines data access operations for affiliates.
// The cumulative financial counters are never written through this
// interface; only the conversion processor mutates them, via its own
// transaction.
type AffiliateRepository interface {
	Create(ctx context.Context, affiliate *models.Affiliate) error
	GetByID(ctx context.Context, id uint) (*models.Affiliate, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Affiliate, error)
	List(ctx context.Context) ([]models.Affiliate, error)
	// IncrementClicks bumps total_clicks by one as a relative update.
	// Best-effort: callers on the redirect path log and continue on error.
	IncrementClicks(ctx context.Context, id uint) error
}
