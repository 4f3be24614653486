package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Campaign statuses.
const (
	CampaignStatusActive   = "active"
	CampaignStatusInactive = "inactive"
	CampaignStatusPaused   = "paused"
)

// Campaign is an offer affiliates drive traffic to. The cumulative revenue
// columns mirror the affiliate-level split at campaign granularity.
type Campaign struct {
	gorm.Model
	Name           string          `gorm:"size:255;not null;index" json:"name"`
	Type           string          `gorm:"size:50" json:"type"`
	Payout         decimal.Decimal `gorm:"type:decimal(8,2);default:0" json:"payout"`
	Status         string          `gorm:"size:20;default:'active';index" json:"status"`
	Geo            string          `gorm:"size:500" json:"geo"`
	Description    string          `gorm:"type:text" json:"description"`
	RedirectURL    string          `gorm:"size:500" json:"redirect_url"`
	TotalRevenue   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_revenue"`
	NetworkShare   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"network_share"`
	AffiliateShare decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"affiliate_share"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
