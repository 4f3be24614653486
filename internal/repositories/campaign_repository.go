package repositories

import (
	"context"

	"rebelsrev/internal/models"
)

// CampaignRepository defines data access operations for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uint) (*models.Campaign, error)
	ListActive(ctx context.Context) ([]models.Campaign, error)
}
