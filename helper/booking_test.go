package helper

import (
	"testing"

	"hall_manager/constants"
	"hall_manager/model"
)

func TestCanTransitionBookingStatus(t *testing.T) {
	cases := []struct {
		from     string
		to       string
		expected bool
	}{
		{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED, true},
		{constants.BOOKING_PENDING, constants.BOOKING_CANCELLED, true},
		{constants.BOOKING_PENDING, constants.BOOKING_COMPLETED, false},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_COMPLETED, true},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_CANCELLED, true},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_PENDING, false},
		{constants.BOOKING_COMPLETED, constants.BOOKING_CANCELLED, false},
		{constants.BOOKING_CANCELLED, constants.BOOKING_PENDING, false},
		{constants.BOOKING_PENDING, constants.BOOKING_PENDING, false},
	}

	for _, tc := range cases {
		if got := CanTransitionBookingStatus(tc.from, tc.to); got != tc.expected {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.expected, got)
		}
	}
}

func TestSumPayments(t *testing.T) {
	payments := []model.Payment{
		{Amount: dec("100.50")},
		{Amount: dec("249.50")},
		{Amount: dec("0.01")},
	}
	if got := SumPayments(payments); !got.Equal(dec("350.01")) {
		t.Fatalf("expected 350.01, got %s", got)
	}

	if got := SumPayments(nil); !got.IsZero() {
		t.Fatalf("expected zero for no payments, got %s", got)
	}
}
