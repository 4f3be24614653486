package tracking

import (
	"context"
	"time"

	"rebelsrev/internal/models"
)

// Config holds tracking engine configuration.
type Config struct {
	// TrackingDomain is the base URL tracking links are issued against.
	TrackingDomain string
	// DefaultRedirectURL is returned when a campaign or its redirect URL
	// cannot be resolved. The visitor redirect must never be blocked.
	DefaultRedirectURL string
	// StoreTimeout bounds every ledger store call on the click path.
	StoreTimeout time.Duration
}

// Link is a freshly generated tracking link. Nothing is persisted at
// generation time; the link is stateless until a click occurs.
type Link struct {
	TrackingID  string    `json:"trackingId"`
	TrackingURL string    `json:"trackingUrl"`
	AffiliateID uint      `json:"affiliateId"`
	CampaignID  uint      `json:"campaignId"`
	SubID       string    `json:"subId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClickInput carries everything known about an incoming tracked visit.
type ClickInput struct {
	TrackingID  string
	AffiliateID uint
	CampaignID  uint
	SubID       string
	IPAddress   string
	UserAgent   string
	Country     string
}

// ClickResult is the outcome of recording a click: the persisted row plus
// the URL the visitor should be redirected to.
type ClickResult struct {
	Click       *models.Click
	RedirectURL string
}

// RedirectCache caches campaign redirect URLs on the click hot path.
type RedirectCache interface {
	GetCampaignRedirect(ctx context.Context, campaignID uint) (string, bool, error)
	SetCampaignRedirect(ctx context.Context, campaignID uint, url string) error
}
