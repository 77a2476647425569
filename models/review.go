package models

import (
	"gorm.io/gorm"
)

// Review is left by a guest after a completed stay. BookingID ties each
// review to the stay it came from; one review per booking.
type Review struct {
	gorm.Model

	PropertyID uint   `gorm:"index;column:property_id" json:"property_id"`
	UserID     uint   `gorm:"index;column:user_id" json:"user_id"`
	BookingID  *uint  `gorm:"column:booking_id;uniqueIndex" json:"booking_id,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
