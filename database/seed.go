package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
	"gorm.io/gorm"
)

// SeedTables and SeedMenu are inserted on first start.
var (
	SeedTables = []models.Table{
		{Number: 1, Seats: 4},
		{Number: 2, Seats: 6},
		{Number: 3, Seats: 2},
	}
	SeedMenu = []models.MenuItem{
		{Name: "Pizza", Price: 250, Stock: 20},
		{Name: "Burger", Price: 150, Stock: 30},
		{Name: "Pasta", Price: 200, Stock: 25},
	}
)

// Seed inserts the default tables and menu. Each record type is seeded only
// when its table is empty, so calling Seed repeatedly is harmless.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Table{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count tables: %w", err)
		}
		if count == 0 {
			tables := append([]models.Table(nil), SeedTables...)
			if err := tx.Create(&tables).Error; err != nil {
				return fmt.Errorf("seed tables: %w", err)
			}
			utils.InfoLogger.Printf("Seeded %d tables", len(tables))
		}

		if err := tx.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count menu items: %w", err)
		}
		if count == 0 {
			menu := append([]models.MenuItem(nil), SeedMenu...)
			if err := tx.Create(&menu).Error; err != nil {
				return fmt.Errorf("seed menu: %w", err)
			}
			utils.InfoLogger.Printf("Seeded %d menu items", len(menu))
		}
		return nil
	})
}
