package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetBookings(c *fiber.Ctx) error {
	filterInput := new(model.FilterBooking)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.Booking{}).
		Joins("LEFT JOIN customers ON customers.id = bookings.customer_id")
	if filterInput.SearchKey != "" {
		search := "%" + filterInput.SearchKey + "%"
		query = query.Where("bookings.booking_code ILIKE ? OR customers.name ILIKE ?", search, search)
	}
	if filterInput.HallID != nil {
		query = query.Where("bookings.hall_id = ?", *filterInput.HallID)
	}
	if filterInput.CustomerID != nil {
		query = query.Where("bookings.customer_id = ?", *filterInput.CustomerID)
	}
	if filterInput.Status != "" {
		query = query.Where("bookings.status = ?", filterInput.Status)
	}
	if filterInput.TimeSlot != "" {
		query = query.Where("bookings.time_slot = ?", filterInput.TimeSlot)
	}
	if filterInput.DateFrom != "" {
		query = query.Where("bookings.event_date >= ?", filterInput.DateFrom)
	}
	if filterInput.DateTo != "" {
		query = query.Where("bookings.event_date <= ?", filterInput.DateTo)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var bookings []model.Booking
	err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).
		Preload("Customer").Preload("Hall").
		Order("bookings.event_date DESC, bookings.id DESC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, bookings, filterInput.Limit, filterInput.Page, totalCount)
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var booking model.Booking
	err := database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		Preload("DinnerPackage.DinnerPackage").
		Preload("DinnerPackage.CateringVendor").
		Preload("Payments").
		First(&booking, bookingId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", booking)
}

func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("createBookingInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	eventDate, ok := c.Locals("eventDate").(utils.DateOnly)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	claim, _ := helper.GetInfoAccountFromToken(c)

	tx := database.DB.Begin()

	var customer model.Customer
	if err := tx.First(&customer, input.CustomerID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FieldError(c, "customerId", "Customer does not exist")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	var hall model.Hall
	if err := tx.First(&hall, input.HallID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FieldError(c, "hallId", "Hall does not exist")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if !hall.IsActive {
		tx.Rollback()
		return utils.FieldError(c, "hallId", "Hall is not active")
	}

	available, err := helper.IsHallAvailable(tx, input.HallID, eventDate, input.TimeSlot, 0)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if !available {
		tx.Rollback()
		return utils.FieldError(c, "timeSlot", constants.HALL_NOT_AVAILABLE)
	}

	taxPercentage := helper.GetSettingDecimal(tx, constants.SETTING_DEFAULT_TAX_PERCENTAGE, decimal.Zero)
	if input.TaxPercentage != nil {
		taxPercentage = *input.TaxPercentage
	}

	bookingCode, err := helper.NextBookingCode(tx, time.Now())
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	booking := model.Booking{
		BookingCode:        bookingCode,
		CustomerID:         customer.ID,
		HallID:             hall.ID,
		BookingType:        input.BookingType,
		EventDate:          eventDate,
		TimeSlot:           input.TimeSlot,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		Status:             constants.BOOKING_PENDING,
		DiscountPercentage: input.DiscountPercentage,
		TaxPercentage:      taxPercentage,
		DepositAmount:      input.DepositAmount,
		Remarks:            input.Remarks,
		CreatedBy:          claim.AccountId,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		log.Printf("booking create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := createBookingItems(tx, c, &booking, customer.CustomerType, input.Items); err != nil {
		return err
	}
	if input.DinnerPackage != nil {
		if err := createBookingDinnerPackage(tx, c, &booking, input.DinnerPackage); err != nil {
			return err
		}
	}

	if err := helper.RecalculateBookingTotals(tx, &booking); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		Preload("DinnerPackage.DinnerPackage").
		First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Booking created", booking)
}

// createBookingItems inserts the billed lines, defaulting unit prices from
// the customer's tier. Rolls back and writes the response on failure.
func createBookingItems(tx *gorm.DB, c *fiber.Ctx, booking *model.Booking, customerType string, items []model.BookingItemInput) error {
	for _, item := range items {
		var billingItem model.BillingItem
		if err := tx.First(&billingItem, item.BillingItemID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.FieldError(c, "items",
					fmt.Sprintf("Billing item %d does not exist", item.BillingItemID))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if !billingItem.IsActive {
			tx.Rollback()
			return utils.FieldError(c, "items",
				fmt.Sprintf("Billing item %d is not active", item.BillingItemID))
		}

		unitPrice := helper.TierPrice(customerType, billingItem.InternalPrice, billingItem.ExternalPrice)
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}

		bookingItem := model.BookingItem{
			BookingID:     booking.ID,
			BillingItemID: billingItem.ID,
			Quantity:      item.Quantity,
			UnitPrice:     unitPrice,
			TotalPrice:    helper.LineTotal(item.Quantity, unitPrice),
			Remarks:       item.Remarks,
		}
		if err := tx.Create(&bookingItem).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
	}
	return nil
}

// createBookingDinnerPackage attaches the dinner line, snapshotting the
// package's current per-table price and enforcing its table minimum.
func createBookingDinnerPackage(tx *gorm.DB, c *fiber.Ctx, booking *model.Booking, input *model.BookingDinnerPackageInput) error {
	var dinnerPackage model.DinnerPackage
	if err := tx.First(&dinnerPackage, input.DinnerPackageID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FieldError(c, "dinnerPackage", "Dinner package does not exist")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if !dinnerPackage.IsActive {
		tx.Rollback()
		return utils.FieldError(c, "dinnerPackage", "Dinner package is not active")
	}

	if !helper.MeetsTableMinimum(input.NumberOfTables, dinnerPackage.MinimumTables) {
		tx.Rollback()
		return utils.FieldError(c, "dinnerPackage",
			fmt.Sprintf("Number of tables must be at least %d for this dinner package",
				helper.RequiredTableMinimum(dinnerPackage.MinimumTables)))
	}

	if input.CateringVendorID != nil {
		var vendor model.CateringVendor
		if err := tx.First(&vendor, *input.CateringVendorID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.FieldError(c, "dinnerPackage", "Catering vendor does not exist")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if !vendor.IsActive {
			tx.Rollback()
			return utils.FieldError(c, "dinnerPackage", "Catering vendor is not active")
		}
	}

	dinner := model.BookingDinnerPackage{
		BookingID:           booking.ID,
		DinnerPackageID:     dinnerPackage.ID,
		CateringVendorID:    input.CateringVendorID,
		NumberOfTables:      input.NumberOfTables,
		PricePerTable:       dinnerPackage.PricePerTable,
		TotalAmount:         helper.DinnerTotal(dinnerPackage.PricePerTable, input.NumberOfTables),
		SpecialMenuRequests: input.SpecialMenuRequests,
	}
	if err := tx.Create(&dinner).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return nil
}

func EditBooking(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("bookingId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editBookingInput").(model.EditBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if booking.Status == constants.BOOKING_COMPLETED || booking.Status == constants.BOOKING_CANCELLED {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.BOOKING_ALREADY_CLOSED)
	}

	if input.HallID != nil {
		var hall model.Hall
		if err := tx.First(&hall, *input.HallID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.FieldError(c, "hallId", "Hall does not exist")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if !hall.IsActive {
			tx.Rollback()
			return utils.FieldError(c, "hallId", "Hall is not active")
		}
		booking.HallID = *input.HallID
	}
	if eventDate, ok := c.Locals("eventDate").(utils.DateOnly); ok {
		booking.EventDate = eventDate
	}
	if input.TimeSlot != nil {
		booking.TimeSlot = *input.TimeSlot
	}
	if input.StartTime != nil {
		booking.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		booking.EndTime = *input.EndTime
	}
	if input.BookingType != nil {
		booking.BookingType = *input.BookingType
	}
	if input.DiscountPercentage != nil {
		booking.DiscountPercentage = *input.DiscountPercentage
	}
	if input.TaxPercentage != nil {
		booking.TaxPercentage = *input.TaxPercentage
	}
	if input.DepositAmount != nil {
		booking.DepositAmount = *input.DepositAmount
	}
	if input.Remarks != nil {
		booking.Remarks = *input.Remarks
	}

	if booking.BookingType == constants.BOOKING_WITH_DINNER && input.DinnerPackage == nil {
		var existing int64
		if err := tx.Model(&model.BookingDinnerPackage{}).Where("booking_id = ?", booking.ID).Count(&existing).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if existing == 0 {
			tx.Rollback()
			return utils.FieldError(c, "dinnerPackage", "Dinner package details are required for a with_dinner booking")
		}
	}

	// The slot check excludes this booking so keeping the same slot on an
	// unrelated edit never conflicts with itself.
	available, err := helper.IsHallAvailable(tx, booking.HallID, booking.EventDate, booking.TimeSlot, booking.ID)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if !available {
		tx.Rollback()
		return utils.FieldError(c, "timeSlot", constants.HALL_NOT_AVAILABLE)
	}

	if input.Items != nil {
		var customer model.Customer
		if err := tx.First(&customer, booking.CustomerID).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.BookingItem{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if err := createBookingItems(tx, c, &booking, customer.CustomerType, input.Items); err != nil {
			return err
		}
	}

	if booking.BookingType == constants.BOOKING_STANDARD {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.BookingDinnerPackage{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
	} else if input.DinnerPackage != nil {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.BookingDinnerPackage{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if err := createBookingDinnerPackage(tx, c, &booking, input.DinnerPackage); err != nil {
			return err
		}
	}

	if err := helper.RecalculateBookingTotals(tx, &booking); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		Preload("DinnerPackage.DinnerPackage").
		First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Booking updated", booking)
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("bookingId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("statusInput").(model.UpdateBookingStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if !helper.CanTransitionBookingStatus(booking.Status, input.Status) {
		return utils.FieldError(c, "status", constants.INVALID_STATUS_CHANGE)
	}

	booking.Status = input.Status
	if input.Status == constants.BOOKING_CANCELLED {
		now := time.Now()
		booking.CancelledAt = &now
	}
	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Booking status updated", booking)
}

// GetBookingQR returns a PNG QR code carrying the booking code, for on-site
// check-in lookups.
func GetBookingQR(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	png, err := utils.GenerateQRCode(booking.BookingCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
