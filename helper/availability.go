package helper

import (
	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"gorm.io/gorm"
)

// BookingBlocksSlot reports whether booking occupies the given hall, date and
// time slot. Cancelled bookings never block, and excludeBookingID (0 = none)
// lets an edit flow skip the booking being edited so it cannot conflict with
// itself.
func BookingBlocksSlot(booking model.Booking, hallID uint, eventDate utils.DateOnly, timeSlot string, excludeBookingID uint) bool {
	if booking.Status == constants.BOOKING_CANCELLED {
		return false
	}
	if excludeBookingID != 0 && booking.ID == excludeBookingID {
		return false
	}
	return booking.HallID == hallID &&
		booking.TimeSlot == timeSlot &&
		booking.EventDate.Format("2006-01-02") == eventDate.Format("2006-01-02")
}

// IsHallAvailable checks whether any non-cancelled booking already occupies
// the hall for the date and slot. Callers validate hall existence first, a
// missing hall is a not-found error, not an availability answer.
func IsHallAvailable(db *gorm.DB, hallID uint, eventDate utils.DateOnly, timeSlot string, excludeBookingID uint) (bool, error) {
	var count int64
	query := db.Model(&model.Booking{}).
		Where("hall_id = ? AND event_date = ? AND time_slot = ? AND status <> ?",
			hallID, eventDate, timeSlot, constants.BOOKING_CANCELLED)
	if excludeBookingID > 0 {
		query = query.Where("id <> ?", excludeBookingID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// SlotCalendarDay is one day of the hall calendar.
type SlotCalendarDay struct {
	Date    string          `json:"date"`
	Slots   map[string]bool `json:"slots"` // slot -> occupied
	Bookers map[string]uint `json:"bookers,omitempty"`
}

// BuildSlotCalendar marks each slot of each day occupied from a preloaded set
// of the hall's bookings. days are iterated from first to last inclusive.
func BuildSlotCalendar(bookings []model.Booking, hallID uint, first, last utils.DateOnly) []SlotCalendarDay {
	var calendar []SlotCalendarDay
	for day := first; !last.Before(day); day = (utils.DateOnly{Time: day.AddDate(0, 0, 1)}) {
		entry := SlotCalendarDay{
			Date:    day.Format("2006-01-02"),
			Slots:   map[string]bool{},
			Bookers: map[string]uint{},
		}
		for _, slot := range constants.TimeSlots {
			occupied := false
			for _, booking := range bookings {
				if BookingBlocksSlot(booking, hallID, day, slot, 0) {
					occupied = true
					entry.Bookers[slot] = booking.ID
					break
				}
			}
			entry.Slots[slot] = occupied
		}
		if len(entry.Bookers) == 0 {
			entry.Bookers = nil
		}
		calendar = append(calendar, entry)
	}
	return calendar
}
