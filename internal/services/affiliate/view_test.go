package affiliate

import (
	"encoding/json"
	"testing"

	"rebelsrev/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAffiliate() *models.Affiliate {
	aff := &models.Affiliate{
		UserID:           10,
		Name:             "Carlos Rebel",
		Email:            "carlos@rebelsrev.com",
		SubID:            "REV001",
		Status:           models.AffiliateStatusActive,
		TotalClicks:      500,
		TotalConversions: 1,
		TotalRevenue:     decimal.RequireFromString("100.00"),
		DisplayedRevenue: decimal.RequireFromString("50.00"),
		PendingPayment:   decimal.RequireFromString("50.00"),
	}
	aff.ID = 1
	return aff
}

func adminClaims() *models.UserClaims {
	return &models.UserClaims{UserID: 99, Role: models.RoleAdmin}
}

func ownerClaims() *models.UserClaims {
	return &models.UserClaims{UserID: 10, Role: models.RoleAffiliate}
}

func TestProject_Admin(t *testing.T) {
	view, err := Project(testAffiliate(), adminClaims())
	require.NoError(t, err)

	admin, ok := view.(AdminView)
	require.True(t, ok)
	assert.True(t, admin.ActualRevenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, admin.NetworkShare.Equal(decimal.NewFromInt(50)))
	assert.True(t, admin.AffiliateShare.Equal(decimal.NewFromInt(50)))
	assert.True(t, admin.TotalRevenue.Equal(decimal.NewFromInt(100)))
}

func TestProject_Owner(t *testing.T) {
	view, err := Project(testAffiliate(), ownerClaims())
	require.NoError(t, err)

	owner, ok := view.(OwnerView)
	require.True(t, ok)
	// The owner is shown the displayed figure as its total revenue.
	assert.True(t, owner.TotalRevenue.Equal(decimal.NewFromInt(50)))
	assert.True(t, owner.PendingPayment.Equal(decimal.NewFromInt(50)))
}

func TestProject_OwnerNeverSeesTrueGross(t *testing.T) {
	view, err := Project(testAffiliate(), ownerClaims())
	require.NoError(t, err)

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "actualRevenue")
	assert.NotContains(t, fields, "networkShare")
	assert.NotContains(t, fields, "affiliateShare")
	assert.NotContains(t, fields, "displayed_revenue")
	assert.JSONEq(t, `"50.00"`, string(fields["total_revenue"]))
}

func TestProject_ForeignAffiliateForbidden(t *testing.T) {
	other := &models.UserClaims{UserID: 777, Role: models.RoleAffiliate}
	_, err := Project(testAffiliate(), other)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProject_UnknownRoleForbidden(t *testing.T) {
	_, err := Project(testAffiliate(), &models.UserClaims{UserID: 10, Role: "visitor"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = Project(testAffiliate(), nil)
	assert.ErrorIs(t, err, ErrForbidden)
}
