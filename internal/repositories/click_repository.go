package repositories

import (
	"context"
	"time"

	"rebelsrev/internal/models"

	"github.com/shopspring/decimal"
)

// ClickAggregate is the result of a windowed click aggregation.
type ClickAggregate struct {
	TotalClicks      int64
	TotalConversions int64
	TotalRevenue     decimal.Decimal
}

// ClickRepository defines data access operations for clicks. The conversion
// state transition does not go through this interface; the conversion
// processor performs it with a compare-and-set inside its own transaction.
type ClickRepository interface {
	Create(ctx context.Context, click *models.Click) error
	GetByID(ctx context.Context, id uint) (*models.Click, error)
	// Aggregate counts clicks and conversions and sums converted revenue
	// for clicks since the cutoff. A nil affiliateID aggregates across all
	// affiliates.
	Aggregate(ctx context.Context, affiliateID *uint, since time.Time) (*ClickAggregate, error)
}
