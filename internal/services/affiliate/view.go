package affiliate

import (
	"rebelsrev/internal/models"
	"rebelsrev/internal/services/revenue"

	"github.com/shopspring/decimal"
)

// View is a role-shaped projection of an affiliate record. The permitted
// field set is fixed by the concrete type, not by deleting fields from a
// generic map, so a response can never leak a field the role must not see.
type View interface {
	viewRole() string
}

// AdminView exposes the true gross figure alongside the affiliate-facing
// one.
type AdminView struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"user_id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	SubID            string          `json:"sub_id"`
	Status           string          `json:"status"`
	TotalClicks      int64           `json:"total_clicks"`
	TotalConversions int64           `json:"total_conversions"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	DisplayedRevenue decimal.Decimal `json:"displayed_revenue"`
	PendingPayment   decimal.Decimal `json:"pending_payment"`
	ActualRevenue    decimal.Decimal `json:"actualRevenue"`
	NetworkShare     decimal.Decimal `json:"networkShare"`
	AffiliateShare   decimal.Decimal `json:"affiliateShare"`
}

func (AdminView) viewRole() string { return models.RoleAdmin }

// OwnerView is what an affiliate sees of its own record. TotalRevenue
// carries the displayed figure; the true gross and the network share do not
// exist in this type.
type OwnerView struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"user_id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	SubID            string          `json:"sub_id"`
	Status           string          `json:"status"`
	TotalClicks      int64           `json:"total_clicks"`
	TotalConversions int64           `json:"total_conversions"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	PendingPayment   decimal.Decimal `json:"pending_payment"`
}

func (OwnerView) viewRole() string { return models.RoleAffiliate }

var half = decimal.NewFromFloat(0.5)

// Project renders the fields the viewer's role is permitted to see.
// Affiliates may only view their own record.
func Project(aff *models.Affiliate, claims *models.UserClaims) (View, error) {
	switch {
	case claims == nil:
		return nil, ErrForbidden
	case claims.Role == models.RoleAdmin:
		return projectAdmin(aff), nil
	case claims.Role == models.RoleAffiliate && aff.UserID == claims.UserID:
		return projectOwner(aff), nil
	default:
		return nil, ErrForbidden
	}
}

func projectAdmin(aff *models.Affiliate) AdminView {
	return AdminView{
		ID:               aff.ID,
		UserID:           aff.UserID,
		Name:             aff.Name,
		Email:            aff.Email,
		SubID:            aff.SubID,
		Status:           aff.Status,
		TotalClicks:      aff.TotalClicks,
		TotalConversions: aff.TotalConversions,
		TotalRevenue:     revenue.Round2(aff.TotalRevenue),
		DisplayedRevenue: revenue.Round2(aff.DisplayedRevenue),
		PendingPayment:   revenue.Round2(aff.PendingPayment),
		ActualRevenue:    revenue.Round2(aff.TotalRevenue),
		// Derived from the true gross at the fixed rate, matching how
		// the dashboard has always shown it.
		NetworkShare:   revenue.Round2(aff.TotalRevenue.Mul(half)),
		AffiliateShare: revenue.Round2(aff.DisplayedRevenue),
	}
}

func projectOwner(aff *models.Affiliate) OwnerView {
	return OwnerView{
		ID:               aff.ID,
		UserID:           aff.UserID,
		Name:             aff.Name,
		Email:            aff.Email,
		SubID:            aff.SubID,
		Status:           aff.Status,
		TotalClicks:      aff.TotalClicks,
		TotalConversions: aff.TotalConversions,
		TotalRevenue:     revenue.Round2(aff.DisplayedRevenue),
		PendingPayment:   revenue.Round2(aff.PendingPayment),
	}
}
