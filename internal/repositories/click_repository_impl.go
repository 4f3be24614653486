package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rebelsrev/internal/models"

	"gorm.io/gorm"
)

type clickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) ClickRepository {
	return &clickRepository{db: db}
}

func (r *clickRepository) Create(ctx context.Context, click *models.Click) error {
	if err := r.db.WithContext(ctx).Create(click).Error; err != nil {
		return fmt.Errorf("failed to create click: %w", err)
	}
	return nil
}

func (r *clickRepository) GetByID(ctx context.Context, id uint) (*models.Click, error) {
	var click models.Click
	if err := r.db.WithContext(ctx).First(&click, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClickNotFound
		}
		return nil, fmt.Errorf("failed to get click: %w", err)
	}
	return &click, nil
}

func (r *clickRepository) Aggregate(ctx context.Context, affiliateID *uint, since time.Time) (*ClickAggregate, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Click{}).
		Where("clicked_at >= ?", since)
	if affiliateID != nil {
		query = query.Where("affiliate_id = ?", *affiliateID)
	}

	var agg ClickAggregate
	err := query.
		Select(
			"COUNT(*) AS total_clicks, " +
				"COALESCE(SUM(CASE WHEN is_converted THEN 1 ELSE 0 END), 0) AS total_conversions, " +
				"COALESCE(SUM(revenue), 0) AS total_revenue",
		).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	return &agg, nil
}
