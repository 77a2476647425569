package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusRejected  = "rejected"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// ActiveBookingStatuses are the statuses that still occupy their date range.
// Bookings in any of these block overlapping bookings on the same property.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

// bookingTransitions is the allowed lifecycle graph. Statuses absent from the
// map are terminal.
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled, BookingStatusRejected},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint `gorm:"index;column:property_id" json:"property_id"`
	GuestID    uint `gorm:"index;column:guest_id" json:"guest_id"`

	ReferenceCode string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	CheckIn       time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut      time.Time `gorm:"column:check_out" json:"check_out"`
	Nights        int       `gorm:"column:nights" json:"nights"`
	GuestsCount   int       `gorm:"column:guests_count" json:"guests_count"`

	// Price snapshot taken at booking time. Stays fixed even if the
	// property's pricing changes later.
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Subtotal      float64 `gorm:"column:subtotal" json:"subtotal"`
	CleaningFee   float64 `gorm:"column:cleaning_fee" json:"cleaning_fee"`
	ServiceFee    float64 `gorm:"column:service_fee" json:"service_fee"`
	TotalPrice    float64 `gorm:"column:total_price" json:"total_price"`

	Status        string `gorm:"column:status;size:32;index" json:"status"`
	PaymentStatus string `gorm:"column:payment_status;size:32" json:"payment_status"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
	Guest    User     `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}
