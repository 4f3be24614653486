// Command seed populates the database with a demo admin, two affiliates and
// three campaigns for local development.
package main

import (
	"log"
	"time"

	"rebelsrev/internal/config"
	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	db, err := repositories.OpenDB(repositories.DBConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repositories.CloseDB(db)

	seedUser(db, "admin", "admin@rebelsrev.com", config.GetEnv("ADMIN_PASSWORD", "admin123"), models.RoleAdmin)
	rebel := seedUser(db, "rebel_affiliate", "carlos@rebelsrev.com", "rebel123", models.RoleAffiliate)
	storm := seedUser(db, "storm_maria", "maria@rebelsrev.com", "storm123", models.RoleAffiliate)

	seedAffiliate(db, rebel.ID, "Carlos Rebel", rebel.Email, "REV001", 12500, 625, "15420.50", "7710.25", "7710.25")
	seedAffiliate(db, storm.ID, "María Storm", storm.Email, "REV002", 8950, 445, "8900.00", "4450.00", "4450.00")

	seedCampaign(db, "iPhone 15 Revolution", "sweeps", "2.50", "US,CA,UK",
		"Revolutionary iPhone giveaway for rebels", "https://iphone-revolution.example.com",
		"15600.00", "7800.00", "7800.00")
	seedCampaign(db, "Mobile Rebellion - Premium Apps", "mobile_content", "1.80", "US,AU,DE",
		"Premium app revolution for mobile warriors", "https://mobile-rebellion.example.com",
		"12400.00", "6200.00", "6200.00")
	seedCampaign(db, "Credit Storm - PIN Submit", "pin_submit", "3.20", "US,CA",
		"Credit revolution with PIN verification", "https://credit-storm.example.com",
		"9800.00", "4900.00", "4900.00")

	log.Println("database seeded successfully")
}

func seedUser(db *gorm.DB, username, email, password, role string) *models.User {
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return &existing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedAffiliate(db *gorm.DB, userID uint, name, email, subID string, clicks, conversions int64, total, displayed, pending string) {
	var existing models.Affiliate
	if err := db.Where("sub_id = ?", subID).First(&existing).Error; err == nil {
		return
	}

	aff := &models.Affiliate{
		UserID:           userID,
		Name:             name,
		Email:            email,
		SubID:            subID,
		Status:           models.AffiliateStatusActive,
		CommissionRate:   decimal.NewFromFloat(0.5),
		TotalClicks:      clicks,
		TotalConversions: conversions,
		TotalRevenue:     decimal.RequireFromString(total),
		DisplayedRevenue: decimal.RequireFromString(displayed),
		PendingPayment:   decimal.RequireFromString(pending),
		JoinDate:         time.Now().UTC(),
		LastActivity:     time.Now().UTC(),
	}
	if err := db.Create(aff).Error; err != nil {
		log.Fatalf("failed to seed affiliate %s: %v", subID, err)
	}
}

func seedCampaign(db *gorm.DB, name, ctype, payout, geo, description, redirectURL, total, network, affiliateShare string) {
	var existing models.Campaign
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		return
	}

	campaign := &models.Campaign{
		Name:           name,
		Type:           ctype,
		Payout:         decimal.RequireFromString(payout),
		Status:         models.CampaignStatusActive,
		Geo:            geo,
		Description:    description,
		RedirectURL:    redirectURL,
		TotalRevenue:   decimal.RequireFromString(total),
		NetworkShare:   decimal.RequireFromString(network),
		AffiliateShare: decimal.RequireFromString(affiliateShare),
	}
	if err := db.Create(campaign).Error; err != nil {
		log.Fatalf("failed to seed campaign %s: %v", name, err)
	}
}
