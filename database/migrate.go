package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the four record tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Table{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Order{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
