package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Click is one recorded visit via a tracking link. A click converts at most
// once: IsConverted flips to true exactly once and Revenue moves from zero to
// the gross conversion amount in the same update.
type Click struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	TrackingID  string          `gorm:"size:36;uniqueIndex;not null" json:"tracking_id"`
	AffiliateID uint            `gorm:"index;not null" json:"affiliate_id"`
	CampaignID  uint            `gorm:"index;not null" json:"campaign_id"`
	SubID       string          `gorm:"size:50" json:"sub_id"`
	IPAddress   string          `gorm:"size:45" json:"ip_address"`
	UserAgent   string          `gorm:"type:text" json:"user_agent"`
	Country     string          `gorm:"size:2" json:"country"`
	IsConverted bool            `gorm:"default:false;index" json:"is_converted"`
	Revenue     decimal.Decimal `gorm:"type:decimal(8,2);default:0" json:"revenue"`
	ClickedAt   time.Time       `gorm:"index" json:"clicked_at"`
}

func (Click) TableName() string {
	return "clicks"
}
