package repositories

import (
	"context"
	"errors"
	"fmt"

	"rebelsrev/internal/models"

	"gorm.io/gorm"
)

type affiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) AffiliateRepository {
	return &affiliateRepository{db: db}
}

func (r *affiliateRepository) Create(ctx context.Context, affiliate *models.Affiliate) error {
	if err := r.db.WithContext(ctx).Create(affiliate).Error; err != nil {
		return fmt.Errorf("failed to create affiliate: %w", err)
	}
	return nil
}

func (r *affiliateRepository) GetByID(ctx context.Context, id uint) (*models.Affiliate, error) {
	var affiliate models.Affiliate
	err := r.db.WithContext(ctx).Preload("User").First(&affiliate, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	return &affiliate, nil
}

func (r *affiliateRepository) GetByUserID(ctx context.Context, userID uint) (*models.Affiliate, error) {
	var affiliate models.Affiliate
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&affiliate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffiliateNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	return &affiliate, nil
}

func (r *affiliateRepository) List(ctx context.Context) ([]models.Affiliate, error) {
	var affiliates []models.Affiliate
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&affiliates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list affiliates: %w", err)
	}
	return affiliates, nil
}

func (r *affiliateRepository) IncrementClicks(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Affiliate{}).
		Where("id = ?", id).
		UpdateColumn("total_clicks", gorm.Expr("total_clicks + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	return nil
}
