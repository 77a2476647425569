package models

import "time"

type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SiteName  string    `gorm:"size:255" json:"site_name"`
	Tagline   string    `gorm:"size:255" json:"tagline"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	Logo      string    `gorm:"size:255" json:"logo"`
	Currency  string    `gorm:"size:10;default:'USD'" json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
