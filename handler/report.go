package handler

import (
	"time"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type dashboardReport struct {
	BookingsByStatus   map[string]int64 `json:"bookingsByStatus"`
	QuotationsByStatus map[string]int64 `json:"quotationsByStatus"`
	UpcomingBookings   int64            `json:"upcomingBookings"`
	TotalCustomers     int64            `json:"totalCustomers"`
	ActiveHalls        int64            `json:"activeHalls"`
	Revenue            decimal.Decimal  `json:"revenue"`
	OutstandingBalance decimal.Decimal  `json:"outstandingBalance"`
}

type statusCount struct {
	Status string
	Count  int64
}

// GetDashboard aggregates the admin dashboard counters in one round trip per
// metric. Revenue counts confirmed and completed bookings only.
func GetDashboard(c *fiber.Ctx) error {
	db := database.DB
	report := dashboardReport{
		BookingsByStatus:   map[string]int64{},
		QuotationsByStatus: map[string]int64{},
		Revenue:            decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}

	var bookingCounts []statusCount
	err := db.Model(&model.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&bookingCounts).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	for _, row := range bookingCounts {
		report.BookingsByStatus[row.Status] = row.Count
	}

	var quotationCounts []statusCount
	err = db.Model(&model.Quotation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&quotationCounts).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	for _, row := range quotationCounts {
		report.QuotationsByStatus[row.Status] = row.Count
	}

	now := time.Now()
	today := utils.NewDateOnly(now.Year(), now.Month(), now.Day())
	err = db.Model(&model.Booking{}).
		Where("event_date >= ? AND status IN ?", today,
			[]string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
		Count(&report.UpcomingBookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := db.Model(&model.Customer{}).Count(&report.TotalCustomers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := db.Model(&model.Hall{}).Where("is_active = ?", true).Count(&report.ActiveHalls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var revenue struct {
		Total decimal.Decimal
	}
	err = db.Model(&model.Booking{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status IN ?", []string{constants.BOOKING_CONFIRMED, constants.BOOKING_COMPLETED}).
		Scan(&revenue).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	report.Revenue = revenue.Total

	var outstanding struct {
		Total decimal.Decimal
	}
	err = db.Model(&model.Booking{}).
		Select("COALESCE(SUM(balance_amount), 0) AS total").
		Where("status IN ? AND balance_amount > 0",
			[]string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
		Scan(&outstanding).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	report.OutstandingBalance = outstanding.Total

	return utils.SuccessResponse(c, fiber.StatusOK, "OK", report)
}
