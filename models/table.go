package models

import "time"

// Table is a physical seating unit. IsReserved flips to true on reservation and
// back to false only through an explicit release.
type Table struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Number     int       `gorm:"not null;uniqueIndex" json:"number"`
	Seats      int       `gorm:"not null" json:"seats"`
	IsReserved bool      `gorm:"not null;default:false;index" json:"is_reserved"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
