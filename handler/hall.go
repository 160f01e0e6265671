package handler

import (
	"errors"
	"log"
	"time"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetHalls(c *fiber.Ctx) error {
	filterInput := new(model.FilterHall)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.Hall{})
	if filterInput.SearchKey != "" {
		search := "%" + filterInput.SearchKey + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}
	if filterInput.Active != nil {
		query = query.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var halls []model.Hall
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Order("code ASC").Find(&halls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, halls, filterInput.Limit, filterInput.Page, totalCount)
}

func GetHallById(c *fiber.Ctx) error {
	hallId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var hall model.Hall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", hall)
}

func CreateHall(c *fiber.Ctx) error {
	input, ok := c.Locals("createHallInput").(model.CreateHallInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var existing model.Hall
	if err := database.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return utils.FieldError(c, "code", "A hall with this code already exists")
	}

	hall := model.Hall{
		Code:          input.Code,
		Name:          input.Name,
		Capacity:      input.Capacity,
		InternalPrice: input.InternalPrice,
		ExternalPrice: input.ExternalPrice,
		OvertimeRate:  input.OvertimeRate,
		Description:   input.Description,
		IsActive:      true,
	}
	if input.SessionDuration != nil {
		hall.SessionDuration = *input.SessionDuration
	} else {
		hall.SessionDuration = 4
	}

	if err := database.DB.Create(&hall).Error; err != nil {
		log.Printf("hall create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Hall created", hall)
}

func EditHall(c *fiber.Ctx) error {
	hallId, ok := c.Locals("hallId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editHallInput").(model.EditHallInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var hall model.Hall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.Capacity != nil {
		hall.Capacity = *input.Capacity
	}
	if input.InternalPrice != nil {
		hall.InternalPrice = *input.InternalPrice
	}
	if input.ExternalPrice != nil {
		hall.ExternalPrice = *input.ExternalPrice
	}
	if input.SessionDuration != nil {
		hall.SessionDuration = *input.SessionDuration
	}
	if input.OvertimeRate != nil {
		hall.OvertimeRate = *input.OvertimeRate
	}
	if input.Description != nil {
		hall.Description = *input.Description
	}

	if err := database.DB.Save(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Hall updated", hall)
}

// DeleteHall refuses when any booking or quotation references the hall,
// history must stay intact. Deactivate instead.
func DeleteHall(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	var bookingCount int64
	if err := tx.Model(&model.Booking{}).Where("hall_id IN ?", ids).Count(&bookingCount).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	var quotationCount int64
	if err := tx.Model(&model.Quotation{}).Where("hall_id IN ?", ids).Count(&quotationCount).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if bookingCount > 0 || quotationCount > 0 {
		tx.Rollback()
		return utils.FieldError(c, "ids", constants.HALL_IN_USE)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.Hall{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Halls deleted", fiber.Map{"ids": ids})
}

func ActiveHall(c *fiber.Ctx) error {
	hallId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("activeInput").(model.ActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var hall model.Hall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	hall.IsActive = *input.IsActive
	if err := database.DB.Save(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Hall updated", hall)
}

// CheckAvailability answers the calendar widget before a booking is attempted.
func CheckAvailability(c *fiber.Ctx) error {
	hallId := c.Locals("hallId").(uint)
	eventDate := c.Locals("eventDate").(utils.DateOnly)
	timeSlot := c.Locals("timeSlot").(string)
	excludeBookingId := c.Locals("excludeBookingId").(uint)

	var hall model.Hall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	available, err := helper.IsHallAvailable(database.DB, hallId, eventDate, timeSlot, excludeBookingId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", fiber.Map{
		"hallId":    hallId,
		"eventDate": eventDate,
		"timeSlot":  timeSlot,
		"available": available,
	})
}

// GetHallCalendar returns slot occupancy for a whole month at once.
func GetHallCalendar(c *fiber.Ctx) error {
	hallId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	month := c.Query("month") // YYYY-MM
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return utils.FieldError(c, "month", "month must be YYYY-MM")
	}

	var hall model.Hall
	if err := database.DB.First(&hall, hallId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	first := utils.NewDateOnly(monthStart.Year(), monthStart.Month(), 1)
	last := utils.DateOnly{Time: first.AddDate(0, 1, -1)}

	var bookings []model.Booking
	if err := database.DB.
		Where("hall_id = ? AND event_date BETWEEN ? AND ? AND status <> ?",
			hallId, first, last, constants.BOOKING_CANCELLED).
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	calendar := helper.BuildSlotCalendar(bookings, hallId, first, last)
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", fiber.Map{
		"hall":     hall,
		"month":    month,
		"calendar": calendar,
	})
}
