package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion types.
const (
	ConversionTypeSale    = "sale"
	ConversionTypeLead    = "lead"
	ConversionTypeInstall = "install"
	ConversionTypeSignup  = "signup"
)

// Conversion links a click to realized gross revenue and records how the
// revenue split broke down at the time of the event.
type Conversion struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	ClickID          uint            `gorm:"index;not null" json:"click_id"`
	AffiliateID      uint            `gorm:"index;not null" json:"affiliate_id"`
	CampaignID       uint            `gorm:"index;not null" json:"campaign_id"`
	ConversionType   string          `gorm:"size:20;default:'lead'" json:"conversion_type"`
	TotalRevenue     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"total_revenue"`
	NetworkRevenue   decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"network_revenue"`
	AffiliateRevenue decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"affiliate_revenue"`
	TransactionID    string          `gorm:"size:100" json:"transaction_id"`
	ConvertedAt      time.Time       `gorm:"index" json:"converted_at"`
}

func (Conversion) TableName() string {
	return "conversions"
}
