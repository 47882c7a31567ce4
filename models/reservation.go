package models

import "time"

// Reservation binds a customer name to a table. Rows are append-only.
type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TableID      uint      `gorm:"not null;index" json:"table_id"`
	Table        Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CustomerName string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
