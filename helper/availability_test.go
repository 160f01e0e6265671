package helper

import (
	"testing"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"
)

func makeBooking(id, hallID uint, date utils.DateOnly, slot, status string) model.Booking {
	booking := model.Booking{
		HallID:    hallID,
		EventDate: date,
		TimeSlot:  slot,
		Status:    status,
	}
	booking.ID = id
	return booking
}

func TestBookingBlocksSlot(t *testing.T) {
	date := utils.NewDateOnly(2025, 6, 14)
	otherDate := utils.NewDateOnly(2025, 6, 15)

	cases := []struct {
		name     string
		booking  model.Booking
		hallID   uint
		date     utils.DateOnly
		slot     string
		exclude  uint
		expected bool
	}{
		{
			name:     "same hall date and slot blocks",
			booking:  makeBooking(1, 7, date, constants.SLOT_MORNING, constants.BOOKING_CONFIRMED),
			hallID:   7, date: date, slot: constants.SLOT_MORNING,
			expected: true,
		},
		{
			name:     "cancelled booking never blocks",
			booking:  makeBooking(1, 7, date, constants.SLOT_MORNING, constants.BOOKING_CANCELLED),
			hallID:   7, date: date, slot: constants.SLOT_MORNING,
			expected: false,
		},
		{
			name:     "different slot does not block",
			booking:  makeBooking(1, 7, date, constants.SLOT_MORNING, constants.BOOKING_PENDING),
			hallID:   7, date: date, slot: constants.SLOT_EVENING,
			expected: false,
		},
		{
			name:     "different date does not block",
			booking:  makeBooking(1, 7, date, constants.SLOT_MORNING, constants.BOOKING_PENDING),
			hallID:   7, date: otherDate, slot: constants.SLOT_MORNING,
			expected: false,
		},
		{
			name:     "different hall does not block",
			booking:  makeBooking(1, 7, date, constants.SLOT_MORNING, constants.BOOKING_PENDING),
			hallID:   8, date: date, slot: constants.SLOT_MORNING,
			expected: false,
		},
		{
			name:     "excluded booking does not block itself",
			booking:  makeBooking(5, 7, date, constants.SLOT_MORNING, constants.BOOKING_CONFIRMED),
			hallID:   7, date: date, slot: constants.SLOT_MORNING,
			exclude:  5,
			expected: false,
		},
		{
			name:     "exclusion only skips the matching id",
			booking:  makeBooking(6, 7, date, constants.SLOT_MORNING, constants.BOOKING_CONFIRMED),
			hallID:   7, date: date, slot: constants.SLOT_MORNING,
			exclude:  5,
			expected: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BookingBlocksSlot(tc.booking, tc.hallID, tc.date, tc.slot, tc.exclude)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestBuildSlotCalendar(t *testing.T) {
	first := utils.NewDateOnly(2025, 6, 1)
	last := utils.NewDateOnly(2025, 6, 3)

	bookings := []model.Booking{
		makeBooking(1, 7, utils.NewDateOnly(2025, 6, 1), constants.SLOT_MORNING, constants.BOOKING_CONFIRMED),
		makeBooking(2, 7, utils.NewDateOnly(2025, 6, 2), constants.SLOT_EVENING, constants.BOOKING_CANCELLED),
	}

	calendar := BuildSlotCalendar(bookings, 7, first, last)
	if len(calendar) != 3 {
		t.Fatalf("expected 3 days, got %d", len(calendar))
	}

	if !calendar[0].Slots[constants.SLOT_MORNING] {
		t.Fatal("expected June 1 morning occupied")
	}
	if calendar[0].Slots[constants.SLOT_EVENING] {
		t.Fatal("expected June 1 evening free")
	}
	if calendar[0].Bookers[constants.SLOT_MORNING] != 1 {
		t.Fatalf("expected booking 1 on June 1 morning, got %d", calendar[0].Bookers[constants.SLOT_MORNING])
	}

	// cancelled booking leaves June 2 fully free
	if calendar[1].Slots[constants.SLOT_MORNING] || calendar[1].Slots[constants.SLOT_EVENING] {
		t.Fatal("expected June 2 fully free")
	}
	if calendar[1].Bookers != nil {
		t.Fatal("expected no bookers on June 2")
	}

	if calendar[2].Date != "2025-06-03" {
		t.Fatalf("expected last day 2025-06-03, got %s", calendar[2].Date)
	}
}
