package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"
	"rebelsrev/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db, nil)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &fields), "body: %s", raw)
	}
	return resp, fields
}

func assertDecimalField(t *testing.T, fields map[string]json.RawMessage, name, want string) {
	t.Helper()
	require.Contains(t, fields, name)

	var got decimal.Decimal
	require.NoError(t, json.Unmarshal(fields[name], &got))
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s = %s, want %s", name, got, want)
}

func register(t *testing.T, app *fiber.App, username, email, role string) string {
	t.Helper()
	resp, fields := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": username,
		"email":    email,
		"password": "s3cret-pass",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var token string
	require.NoError(t, json.Unmarshal(fields["token"], &token))
	return token
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	register(t, app, "carlos", "carlos@rebelsrev.com", "")

	resp, fields := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "carlos",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, fields, "token")
	assert.Contains(t, fields, "affiliate")

	resp, fields = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "carlos",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, fields, "error")
}

func TestAffiliateListRequiresAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	affToken := register(t, app, "carlos", "carlos@rebelsrev.com", "")
	adminToken := register(t, app, "boss", "boss@rebelsrev.com", "admin")

	resp, _ := doJSON(t, app, http.MethodGet, "/api/affiliates", affToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, fields := doJSON(t, app, http.MethodGet, "/api/affiliates", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, fields, "affiliates")

	resp, _ = doJSON(t, app, http.MethodGet, "/api/affiliates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAffiliateMasking(t *testing.T) {
	app, db := newTestApp(t)

	ownerToken := register(t, app, "carlos", "carlos@rebelsrev.com", "")
	otherToken := register(t, app, "maria", "maria@rebelsrev.com", "")
	adminToken := register(t, app, "boss", "boss@rebelsrev.com", "admin")

	// Give the first affiliate some history.
	var aff models.Affiliate
	require.NoError(t, db.Where("email = ?", "carlos@rebelsrev.com").First(&aff).Error)
	require.NoError(t, db.Model(&aff).Updates(map[string]interface{}{
		"total_revenue":     decimal.RequireFromString("100.00"),
		"displayed_revenue": decimal.RequireFromString("50.00"),
		"pending_payment":   decimal.RequireFromString("50.00"),
	}).Error)

	path := fmt.Sprintf("/api/affiliates/%d", aff.ID)

	resp, fields := doJSON(t, app, http.MethodGet, path, adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertDecimalField(t, fields, "actualRevenue", "100")
	assertDecimalField(t, fields, "networkShare", "50")
	assertDecimalField(t, fields, "total_revenue", "100")

	resp, fields = doJSON(t, app, http.MethodGet, path, ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertDecimalField(t, fields, "total_revenue", "50")
	assert.NotContains(t, fields, "actualRevenue")
	assert.NotContains(t, fields, "networkShare")

	resp, _ = doJSON(t, app, http.MethodGet, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/affiliates/99999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTrackingFlow(t *testing.T) {
	app, db := newTestApp(t)

	register(t, app, "carlos", "carlos@rebelsrev.com", "")

	var aff models.Affiliate
	require.NoError(t, db.Where("email = ?", "carlos@rebelsrev.com").First(&aff).Error)
	campaign := &models.Campaign{
		Name:        "Promo",
		Status:      models.CampaignStatusActive,
		RedirectURL: "https://offer.test/landing",
	}
	require.NoError(t, db.Create(campaign).Error)

	// Generate a link, no auth required.
	resp, fields := doJSON(t, app, http.MethodPost, "/api/tracking/generate-link", "", fiber.Map{
		"affiliateId": aff.ID,
		"campaignId":  campaign.ID,
		"subId":       "src-a",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var trackingID string
	require.NoError(t, json.Unmarshal(fields["trackingId"], &trackingID))
	require.NotEmpty(t, trackingID)

	// Record the click.
	clickPath := fmt.Sprintf("/api/tracking/click/%s?aff=%d&camp=%d&sub=src-a", trackingID, aff.ID, campaign.ID)
	resp, fields = doJSON(t, app, http.MethodPost, clickPath, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"https://offer.test/landing"`, string(fields["redirectUrl"]))

	var clickID uint
	require.NoError(t, json.Unmarshal(fields["clickId"], &clickID))

	// Convert it.
	resp, fields = doJSON(t, app, http.MethodPost, "/api/tracking/conversion", "", fiber.Map{
		"clickId":        clickID,
		"revenue":        "100.00",
		"conversionType": "sale",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"100.00"`, string(fields["totalRevenue"]))
	assert.JSONEq(t, `"50.00"`, string(fields["affiliateRevenue"]))

	// Converting twice is rejected.
	resp, fields = doJSON(t, app, http.MethodPost, "/api/tracking/conversion", "", fiber.Map{
		"clickId": clickID,
		"revenue": "100.00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fields, "error")
}

func TestStatsEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	ownerToken := register(t, app, "carlos", "carlos@rebelsrev.com", "")
	adminToken := register(t, app, "boss", "boss@rebelsrev.com", "admin")

	var aff models.Affiliate
	require.NoError(t, db.Where("email = ?", "carlos@rebelsrev.com").First(&aff).Error)

	resp, fields := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stats?affiliateId=%d&period=7d", aff.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, fields, "totalClicks")

	// An affiliate cannot read another affiliate's stats.
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stats?affiliateId=%d", aff.ID+1), ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/stats?period=90d", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
