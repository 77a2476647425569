package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusRejected, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusRejected, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected}
	all := []string{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusCompleted, BookingStatusRejected,
	}

	for _, from := range terminal {
		for _, to := range all {
			require.False(t, CanTransition(from, to), "%s -> %s should be blocked", from, to)
		}
	}
}

func TestActiveBookingStatuses(t *testing.T) {
	require.ElementsMatch(t,
		[]string{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted},
		ActiveBookingStatuses)
}
