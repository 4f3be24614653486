package migration

import (
	"rebelsrev/internal/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Initialise creates the full ledger schema.
var Initialise = &gormigrate.Migration{
	ID: "202508241030-initialise",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(
			&models.User{},
			&models.Affiliate{},
			&models.Campaign{},
			&models.Click{},
			&models.Conversion{},
		)
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(
			&models.User{},
			&models.Affiliate{},
			&models.Campaign{},
			&models.Click{},
			&models.Conversion{},
		)
	},
}

// All returns every migration in order.
func All() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		Initialise,
	}
}
