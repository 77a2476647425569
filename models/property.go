package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Rental types govern which stay lengths a property accepts.
const (
	RentalTypeShortTerm = "short_term"
	RentalTypeLongTerm  = "long_term"
	RentalTypeBoth      = "both"
)

type Property struct {
	gorm.Model

	OwnerID     uint   `gorm:"index;column:owner_id" json:"owner_id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"type:text" json:"address"`
	City        string `gorm:"size:100;index" json:"city"`
	Country     string `gorm:"size:100" json:"country"`

	MaxGuests int     `gorm:"column:max_guests" json:"max_guests"`
	Bedrooms  int     `json:"bedrooms"`
	Beds      int     `json:"beds"`
	Bathrooms float32 `json:"bathrooms"`

	RentalType    string  `gorm:"column:rental_type;size:20;default:'both'" json:"rental_type"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	CleaningFee   float64 `gorm:"column:cleaning_fee;default:0" json:"cleaning_fee"`

	// nil bounds mean unbounded on that side.
	AvailableFrom     *time.Time `gorm:"column:available_from" json:"available_from,omitempty"`
	AvailableTo       *time.Time `gorm:"column:available_to" json:"available_to,omitempty"`
	MinimumStayNights *int       `gorm:"column:minimum_stay_nights" json:"minimum_stay_nights,omitempty"`
	MaximumStayNights *int       `gorm:"column:maximum_stay_nights" json:"maximum_stay_nights,omitempty"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Images    datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	IsActive *bool `gorm:"column:is_active;default:true" json:"is_active"`

	// Denormalized review aggregates, recomputed by the review service.
	Rating       float32 `json:"rating"`
	ReviewsCount int     `gorm:"column:reviews_count" json:"reviews_count"`

	Owner    User      `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Bookings []Booking `gorm:"foreignKey:PropertyID" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:PropertyID" json:"reviews,omitempty"`
}
