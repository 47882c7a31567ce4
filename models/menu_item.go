package models

import "time"

type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// InStock reports whether at least one unit can still be ordered.
func (m MenuItem) InStock() bool {
	return m.Stock > 0
}
