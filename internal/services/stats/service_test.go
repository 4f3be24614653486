package stats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewService(repositories.NewClickRepository(db), repositories.NewAffiliateRepository(db)), db
}

func seedClickAt(t *testing.T, db *gorm.DB, affiliateID uint, at time.Time, converted bool, rev string) {
	t.Helper()
	click := &models.Click{
		TrackingID:  fmt.Sprintf("t-%d-%s", affiliateID, at.Format("20060102150405.000000000")),
		AffiliateID: affiliateID,
		CampaignID:  1,
		IsConverted: converted,
		Revenue:     decimal.RequireFromString(rev),
		ClickedAt:   at,
	}
	require.NoError(t, db.Create(click).Error)
}

func TestQuery_WindowExcludesOldClicks(t *testing.T) {
	svc, db := newTestService(t)
	now := time.Now().UTC()

	seedClickAt(t, db, 1, now.Add(-time.Hour), true, "10.00")
	seedClickAt(t, db, 1, now.Add(-3*24*time.Hour), false, "0")
	// Older than the 7d lookback; must not be counted.
	seedClickAt(t, db, 1, now.Add(-8*24*time.Hour), true, "100.00")

	id := uint(1)
	report, err := svc.Query(context.Background(), &id, "7d", &models.UserClaims{UserID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.TotalClicks)
	assert.Equal(t, int64(1), report.TotalConversions)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(10)), "total = %s", report.TotalRevenue)
	assert.True(t, report.AffiliateRevenue.Equal(decimal.NewFromInt(5)))
	assert.True(t, report.ConversionRate.Equal(decimal.NewFromInt(50)))
}

func TestQuery_DefaultsTo30d(t *testing.T) {
	svc, db := newTestService(t)
	now := time.Now().UTC()

	seedClickAt(t, db, 1, now.Add(-20*24*time.Hour), false, "0")

	report, err := svc.Query(context.Background(), nil, "", &models.UserClaims{UserID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "30d", report.Period)
	assert.Equal(t, int64(1), report.TotalClicks)
	assert.True(t, report.ConversionRate.IsZero())
}

func TestQuery_InvalidPeriod(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Query(context.Background(), nil, "90d", &models.UserClaims{UserID: 1, Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestQuery_AffiliateRestrictedToOwnID(t *testing.T) {
	svc, _ := newTestDBWithAffiliates(t)

	// Affiliate with user 10 owns affiliate record 1; querying 2 is denied.
	other := uint(2)
	_, err := svc.Query(context.Background(), &other, "7d", &models.UserClaims{UserID: 10, Role: models.RoleAffiliate})
	assert.ErrorIs(t, err, ErrForbidden)

	own := uint(1)
	_, err = svc.Query(context.Background(), &own, "7d", &models.UserClaims{UserID: 10, Role: models.RoleAffiliate})
	assert.NoError(t, err)
}

func TestQuery_AffiliateWithoutIDSeesOwnStatsOnly(t *testing.T) {
	svc, db := newTestDBWithAffiliates(t)
	now := time.Now().UTC()

	seedClickAt(t, db, 1, now.Add(-time.Hour), true, "10.00")
	seedClickAt(t, db, 2, now.Add(-time.Hour), true, "40.00")

	report, err := svc.Query(context.Background(), nil, "7d", &models.UserClaims{UserID: 10, Role: models.RoleAffiliate})
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.TotalClicks)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(10)), "total = %s", report.TotalRevenue)
}

func newTestDBWithAffiliates(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&models.Affiliate{
		UserID: 10, Name: "Carlos", Email: "c@x.com", SubID: "REV001",
	}).Error)
	require.NoError(t, db.Create(&models.Affiliate{
		UserID: 11, Name: "Maria", Email: "m@x.com", SubID: "REV002",
	}).Error)
	return svc, db
}
