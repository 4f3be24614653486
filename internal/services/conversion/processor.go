// Package conversion implements the conversion processor: it validates that
// a click is convertible, applies the revenue split and updates the
// affiliate's cumulative balances.
//
// This is the only mutation path for affiliate financial counters. The click
// state transition and the balance updates execute as a single database
// transaction, so a crash between the two steps is never observable as a
// committed state.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rebelsrev/internal/models"
	"rebelsrev/internal/services/revenue"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultStoreTimeout = 5 * time.Second

// Result carries the computed shares so callers can display gross versus
// affiliate revenue in the immediate response.
type Result struct {
	ClickID          uint
	TotalRevenue     decimal.Decimal
	NetworkRevenue   decimal.Decimal
	AffiliateRevenue decimal.Decimal
}

// Processor converts clicks into realized revenue.
type Processor struct {
	db           *gorm.DB
	storeTimeout time.Duration
}

// NewProcessor creates a conversion processor bound to the given store
// handle.
func NewProcessor(db *gorm.DB) *Processor {
	if db == nil {
		panic("db is required")
	}
	return &Processor{
		db:           db,
		storeTimeout: DefaultStoreTimeout,
	}
}

// Convert marks the click converted and applies the split to the owning
// affiliate and campaign. A click converts at most once, ever: two
// concurrent calls for the same click yield exactly one success and one
// ErrAlreadyConverted, guarded by a conditional update on is_converted
// rather than a read-then-write.
func (p *Processor) Convert(ctx context.Context, clickID uint, gross decimal.Decimal, conversionType string) (*Result, error) {
	if gross.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if conversionType == "" {
		conversionType = models.ConversionTypeLead
	}

	networkShare, affiliateShare, err := revenue.Split(gross)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	storeCtx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	defer cancel()

	var click models.Click
	err = p.db.WithContext(storeCtx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&click, clickID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClickNotFound
			}
			return fmt.Errorf("failed to load click: %w", err)
		}

		// Compare-and-set on the conversion flag. Zero affected rows
		// means another conversion won the race.
		res := tx.Model(&models.Click{}).
			Where("id = ? AND is_converted = ?", clickID, false).
			Updates(map[string]interface{}{
				"is_converted": true,
				"revenue":      gross,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to convert click: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyConverted
		}

		// Balance updates are relative increments so concurrent
		// conversions for the same affiliate never lose updates.
		res = tx.Model(&models.Affiliate{}).
			Where("id = ?", click.AffiliateID).
			Updates(map[string]interface{}{
				"total_revenue":     gorm.Expr("total_revenue + ?", gross),
				"displayed_revenue": gorm.Expr("displayed_revenue + ?", affiliateShare),
				"pending_payment":   gorm.Expr("pending_payment + ?", affiliateShare),
				"total_conversions": gorm.Expr("total_conversions + 1"),
				"last_activity":     time.Now().UTC(),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update affiliate balances: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Orphaned conversion: the click still converts, no
			// balance is touched.
			log.Printf("conversion on click %d: affiliate %d no longer exists", clickID, click.AffiliateID)
		}

		if err := tx.Model(&models.Campaign{}).
			Where("id = ?", click.CampaignID).
			Updates(map[string]interface{}{
				"total_revenue":   gorm.Expr("total_revenue + ?", gross),
				"network_share":   gorm.Expr("network_share + ?", networkShare),
				"affiliate_share": gorm.Expr("affiliate_share + ?", affiliateShare),
			}).Error; err != nil {
			return fmt.Errorf("failed to update campaign totals: %w", err)
		}

		record := &models.Conversion{
			ClickID:          click.ID,
			AffiliateID:      click.AffiliateID,
			CampaignID:       click.CampaignID,
			ConversionType:   conversionType,
			TotalRevenue:     gross,
			NetworkRevenue:   networkShare,
			AffiliateRevenue: affiliateShare,
			ConvertedAt:      time.Now().UTC(),
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to record conversion: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrClickNotFound) || errors.Is(err, ErrAlreadyConverted) {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	return &Result{
		ClickID:          clickID,
		TotalRevenue:     gross,
		NetworkRevenue:   networkShare,
		AffiliateRevenue: affiliateShare,
	}, nil
}
