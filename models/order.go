package models

import "time"

// Order records a quantity of a menu item sold against a reserved table.
// Rows are append-only.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TableID    uint      `gorm:"not null;index" json:"table_id"`
	Table      Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	MenuItemID uint      `gorm:"not null;index" json:"item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
