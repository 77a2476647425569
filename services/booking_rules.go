// services/booking_rules.go
package services

import (
	"fmt"
	"math"
	"time"

	"rental-backend/models"
)

// Business constants. Stays of 28 nights or more count as long-term; the
// service fee is a fixed 12% of the subtotal.
const (
	longTermThresholdNights = 28
	serviceFeeRate          = 0.12
)

// Rule codes, one per admission gate.
const (
	RuleCapacityExceeded          = "capacity_exceeded"
	RuleOutsideAvailabilityWindow = "outside_availability_window"
	RuleStayTooShort              = "stay_too_short"
	RuleStayTooLong               = "stay_too_long"
	RuleRentalTypeMismatch        = "rental_type_mismatch"
	RuleDateRangeConflict         = "date_range_conflict"
)

// RuleViolation is an expected admission failure, one per gate. The caller
// branches on Code; Message is safe to show to the client.
type RuleViolation struct {
	Code    string
	Message string
}

func (v *RuleViolation) Error() string { return v.Code }

func violation(code, format string, args ...interface{}) *RuleViolation {
	return &RuleViolation{Code: code, Message: fmt.Sprintf(format, args...)}
}

// BookingDraft is a fully priced booking that passed every admission gate but
// has not been persisted yet.
type BookingDraft struct {
	Nights        int
	PricePerNight float64
	Subtotal      float64
	CleaningFee   float64
	ServiceFee    float64
	TotalPrice    float64
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// nightsBetween returns the whole-day difference between two calendar dates.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(truncateToDate(checkOut).Sub(truncateToDate(checkIn)) / (24 * time.Hour))
}

// roundMoney rounds half-up to 2 decimal places.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// overlaps reports whether two half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// EvaluateBooking runs the admission gates in order and, if all pass, prices
// the stay. Inputs are assumed well-formed by the HTTP layer: checkOut is
// strictly after checkIn and guests >= 1. existing must hold the property's
// bookings whose status still occupies their date range.
//
// The first violated gate short-circuits: its *RuleViolation is returned and
// later gates are not evaluated.
func EvaluateBooking(property models.Property, checkIn, checkOut time.Time, guests int, existing []models.Booking) (BookingDraft, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if guests > property.MaxGuests {
		return BookingDraft{}, violation(RuleCapacityExceeded,
			"property sleeps at most %d guests", property.MaxGuests)
	}

	if property.AvailableFrom != nil && checkIn.Before(truncateToDate(*property.AvailableFrom)) {
		return BookingDraft{}, violation(RuleOutsideAvailabilityWindow,
			"property is not available before %s", property.AvailableFrom.Format("2006-01-02"))
	}
	if property.AvailableTo != nil && checkOut.After(truncateToDate(*property.AvailableTo)) {
		return BookingDraft{}, violation(RuleOutsideAvailabilityWindow,
			"property is not available after %s", property.AvailableTo.Format("2006-01-02"))
	}

	nights := nightsBetween(checkIn, checkOut)

	if property.MinimumStayNights != nil && nights < *property.MinimumStayNights {
		return BookingDraft{}, violation(RuleStayTooShort,
			"minimum stay is %d nights", *property.MinimumStayNights)
	}
	if property.MaximumStayNights != nil && nights > *property.MaximumStayNights {
		return BookingDraft{}, violation(RuleStayTooLong,
			"maximum stay is %d nights", *property.MaximumStayNights)
	}

	switch property.RentalType {
	case models.RentalTypeShortTerm:
		if nights >= longTermThresholdNights {
			return BookingDraft{}, violation(RuleRentalTypeMismatch,
				"property only accepts stays shorter than %d nights", longTermThresholdNights)
		}
	case models.RentalTypeLongTerm:
		if nights < longTermThresholdNights {
			return BookingDraft{}, violation(RuleRentalTypeMismatch,
				"property only accepts stays of %d nights or more", longTermThresholdNights)
		}
	}

	for _, b := range existing {
		if overlaps(checkIn, checkOut, truncateToDate(b.CheckIn), truncateToDate(b.CheckOut)) {
			return BookingDraft{}, violation(RuleDateRangeConflict,
				"property is already booked from %s to %s",
				b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"))
		}
	}

	subtotal := property.PricePerNight * float64(nights)
	draft := BookingDraft{
		Nights:        nights,
		PricePerNight: property.PricePerNight,
		Subtotal:      subtotal,
		CleaningFee:   property.CleaningFee,
		ServiceFee:    roundMoney(subtotal * serviceFeeRate),
	}
	draft.TotalPrice = draft.Subtotal + draft.CleaningFee + draft.ServiceFee
	return draft, nil
}
