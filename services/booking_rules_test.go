package services

import (
	"testing"
	"time"

	"rental-backend/models"
	"rental-backend/utils"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func testProperty() models.Property {
	return models.Property{
		MaxGuests:     4,
		RentalType:    models.RentalTypeBoth,
		PricePerNight: 100,
		CleaningFee:   50,
	}
}

func requireViolation(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	ruleErr, ok := err.(*RuleViolation)
	require.True(t, ok, "expected *RuleViolation, got %T: %v", err, err)
	require.Equal(t, code, ruleErr.Code)
	require.NotEmpty(t, ruleErr.Message)
}

func TestEvaluateBookingPricing(t *testing.T) {
	p := testProperty()

	draft, err := EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-04"), 2, nil)
	require.NoError(t, err)

	require.Equal(t, 3, draft.Nights)
	require.Equal(t, 100.0, draft.PricePerNight)
	require.Equal(t, 300.0, draft.Subtotal)
	require.Equal(t, 50.0, draft.CleaningFee)
	require.Equal(t, 36.0, draft.ServiceFee)
	require.Equal(t, 386.0, draft.TotalPrice)
}

func TestEvaluateBookingServiceFeeRounding(t *testing.T) {
	p := testProperty()
	p.PricePerNight = 99.99
	p.CleaningFee = 0

	// one night: 99.99 * 0.12 = 11.9988 → 12.00
	draft, err := EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-02"), 1, nil)
	require.NoError(t, err)
	require.Equal(t, 12.0, draft.ServiceFee)
	require.Equal(t, 111.99, draft.TotalPrice)
}

func TestEvaluateBookingCapacity(t *testing.T) {
	p := testProperty()

	_, err := EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-04"), 5, nil)
	requireViolation(t, err, RuleCapacityExceeded)

	// boundary is inclusive
	_, err = EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-04"), 4, nil)
	require.NoError(t, err)
}

func TestEvaluateBookingAvailabilityWindow(t *testing.T) {
	p := testProperty()
	p.AvailableFrom = utils.PtrTime(date(t, "2024-06-01"))
	p.AvailableTo = utils.PtrTime(date(t, "2024-06-30"))

	_, err := EvaluateBooking(p, date(t, "2024-05-30"), date(t, "2024-06-03"), 2, nil)
	requireViolation(t, err, RuleOutsideAvailabilityWindow)

	_, err = EvaluateBooking(p, date(t, "2024-06-28"), date(t, "2024-07-02"), 2, nil)
	requireViolation(t, err, RuleOutsideAvailabilityWindow)

	// exactly on the bounds
	_, err = EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-30"), 2, nil)
	require.NoError(t, err)

	// unbounded property has no window gate
	p.AvailableFrom = nil
	p.AvailableTo = nil
	_, err = EvaluateBooking(p, date(t, "2020-01-01"), date(t, "2030-01-01"), 2, nil)
	require.NoError(t, err)
}

func TestEvaluateBookingStayBounds(t *testing.T) {
	p := testProperty()
	p.MinimumStayNights = utils.PtrInt(3)
	p.MaximumStayNights = utils.PtrInt(7)

	_, err := EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-03"), 2, nil)
	requireViolation(t, err, RuleStayTooShort)

	_, err = EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-09"), 2, nil)
	requireViolation(t, err, RuleStayTooLong)

	// boundaries are inclusive
	_, err = EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-04"), 2, nil)
	require.NoError(t, err)
	_, err = EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-08"), 2, nil)
	require.NoError(t, err)
}

func TestEvaluateBookingRentalType(t *testing.T) {
	cases := []struct {
		name       string
		rentalType string
		checkOut   string // from 2024-01-01
		wantCode   string
	}{
		{"short term rejects 28 nights", models.RentalTypeShortTerm, "2024-01-29", RuleRentalTypeMismatch},
		{"short term accepts 27 nights", models.RentalTypeShortTerm, "2024-01-28", ""},
		{"long term accepts 28 nights", models.RentalTypeLongTerm, "2024-01-29", ""},
		{"long term rejects 27 nights", models.RentalTypeLongTerm, "2024-01-28", RuleRentalTypeMismatch},
		{"both accepts 28 nights", models.RentalTypeBoth, "2024-01-29", ""},
		{"both accepts 2 nights", models.RentalTypeBoth, "2024-01-03", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testProperty()
			p.RentalType = tc.rentalType

			_, err := EvaluateBooking(p, date(t, "2024-01-01"), date(t, tc.checkOut), 2, nil)
			if tc.wantCode == "" {
				require.NoError(t, err)
			} else {
				requireViolation(t, err, tc.wantCode)
			}
		})
	}
}

func TestEvaluateBookingOverlap(t *testing.T) {
	p := testProperty()
	existing := []models.Booking{{
		CheckIn:  date(t, "2024-03-01"),
		CheckOut: date(t, "2024-03-05"),
		Status:   models.BookingStatusConfirmed,
	}}

	_, err := EvaluateBooking(p, date(t, "2024-03-04"), date(t, "2024-03-08"), 2, existing)
	requireViolation(t, err, RuleDateRangeConflict)

	// fully contained
	_, err = EvaluateBooking(p, date(t, "2024-03-02"), date(t, "2024-03-04"), 2, existing)
	requireViolation(t, err, RuleDateRangeConflict)

	// surrounding
	_, err = EvaluateBooking(p, date(t, "2024-02-28"), date(t, "2024-03-10"), 2, existing)
	requireViolation(t, err, RuleDateRangeConflict)

	// touching endpoints do not overlap
	_, err = EvaluateBooking(p, date(t, "2024-03-05"), date(t, "2024-03-08"), 2, existing)
	require.NoError(t, err)
	_, err = EvaluateBooking(p, date(t, "2024-02-27"), date(t, "2024-03-01"), 2, existing)
	require.NoError(t, err)
}

func TestEvaluateBookingGateOrder(t *testing.T) {
	// every gate violated at once: capacity must win
	p := testProperty()
	p.MaxGuests = 1
	p.AvailableFrom = utils.PtrTime(date(t, "2024-06-01"))
	p.MinimumStayNights = utils.PtrInt(10)
	p.RentalType = models.RentalTypeLongTerm
	existing := []models.Booking{{
		CheckIn:  date(t, "2024-05-01"),
		CheckOut: date(t, "2024-05-10"),
	}}

	_, err := EvaluateBooking(p, date(t, "2024-05-02"), date(t, "2024-05-04"), 3, existing)
	requireViolation(t, err, RuleCapacityExceeded)

	// with capacity satisfied, the availability window is next
	_, err = EvaluateBooking(p, date(t, "2024-05-02"), date(t, "2024-05-04"), 1, existing)
	requireViolation(t, err, RuleOutsideAvailabilityWindow)

	// min stay fires before the rental-type check
	p.AvailableFrom = nil
	_, err = EvaluateBooking(p, date(t, "2024-05-02"), date(t, "2024-05-04"), 1, existing)
	requireViolation(t, err, RuleStayTooShort)

	// rental type fires before the overlap scan
	p.MinimumStayNights = nil
	_, err = EvaluateBooking(p, date(t, "2024-05-02"), date(t, "2024-05-04"), 1, existing)
	requireViolation(t, err, RuleRentalTypeMismatch)

	p.RentalType = models.RentalTypeBoth
	_, err = EvaluateBooking(p, date(t, "2024-05-02"), date(t, "2024-05-04"), 1, existing)
	requireViolation(t, err, RuleDateRangeConflict)
}

func TestEvaluateBookingNightsDerivation(t *testing.T) {
	p := testProperty()

	draft, err := EvaluateBooking(p, date(t, "2024-06-01"), date(t, "2024-06-02"), 1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, draft.Nights)

	// time-of-day components are ignored
	ci := date(t, "2024-06-01").Add(23 * time.Hour)
	co := date(t, "2024-06-04").Add(1 * time.Hour)
	draft, err = EvaluateBooking(p, ci, co, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 3, draft.Nights)
}

func TestEvaluateBookingIsPure(t *testing.T) {
	p := testProperty()
	existing := []models.Booking{{
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	}}

	first, err1 := EvaluateBooking(p, date(t, "2024-03-01"), date(t, "2024-03-05"), 2, existing)
	second, err2 := EvaluateBooking(p, date(t, "2024-03-01"), date(t, "2024-03-05"), 2, existing)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, first, second)
}
