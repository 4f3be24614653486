package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Affiliate statuses.
const (
	AffiliateStatusActive   = "active"
	AffiliateStatusInactive = "inactive"
	AffiliateStatusPending  = "pending"
	AffiliateStatusBanned   = "banned"
)

// Affiliate is a partner who drives traffic and earns a share of the
// resulting revenue. TotalRevenue is the true gross revenue the affiliate
// ever generated; DisplayedRevenue is the figure the affiliate is shown and
// credited with, so DisplayedRevenue <= TotalRevenue holds at all times.
// The financial counters are mutated only by the conversion processor.
type Affiliate struct {
	gorm.Model
	UserID           uint            `gorm:"index;not null" json:"user_id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Email            string          `gorm:"size:255;not null" json:"email"`
	SubID            string          `gorm:"size:20;uniqueIndex;not null" json:"sub_id"`
	Status           string          `gorm:"size:20;default:'active'" json:"status"`
	CommissionRate   decimal.Decimal `gorm:"type:decimal(5,4);default:0.5" json:"commission_rate"`
	TotalClicks      int64           `gorm:"default:0" json:"total_clicks"`
	TotalConversions int64           `gorm:"default:0" json:"total_conversions"`
	TotalRevenue     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_revenue"`
	DisplayedRevenue decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"displayed_revenue"`
	PendingPayment   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"pending_payment"`
	JoinDate         time.Time       `json:"join_date"`
	LastActivity     time.Time       `json:"last_activity"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Affiliate) TableName() string {
	return "affiliates"
}
