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
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetQuotations(c *fiber.Ctx) error {
	filterInput := new(model.FilterQuotation)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.Quotation{}).
		Joins("LEFT JOIN customers ON customers.id = quotations.customer_id")
	if filterInput.SearchKey != "" {
		search := "%" + filterInput.SearchKey + "%"
		query = query.Where("quotations.quotation_code ILIKE ? OR customers.name ILIKE ?", search, search)
	}
	if filterInput.CustomerID != nil {
		query = query.Where("quotations.customer_id = ?", *filterInput.CustomerID)
	}
	if filterInput.Status != "" {
		query = query.Where("quotations.status = ?", filterInput.Status)
	}
	if filterInput.DateFrom != "" {
		query = query.Where("quotations.event_date >= ?", filterInput.DateFrom)
	}
	if filterInput.DateTo != "" {
		query = query.Where("quotations.event_date <= ?", filterInput.DateTo)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var quotations []model.Quotation
	err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).
		Preload("Customer").Preload("Hall").
		Order("quotations.id DESC").
		Find(&quotations).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, quotations, filterInput.Limit, filterInput.Page, totalCount)
}

func GetQuotationById(c *fiber.Ctx) error {
	quotationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var quotation model.Quotation
	err := database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		First(&quotation, quotationId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", quotation)
}

func CreateQuotation(c *fiber.Ctx) error {
	input, ok := c.Locals("createQuotationInput").(model.CreateQuotationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	eventDate, ok := c.Locals("eventDate").(utils.DateOnly)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	validUntil, ok := c.Locals("validUntil").(utils.DateOnly)
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

	taxPercentage := helper.GetSettingDecimal(tx, constants.SETTING_DEFAULT_TAX_PERCENTAGE, decimal.Zero)
	if input.TaxPercentage != nil {
		taxPercentage = *input.TaxPercentage
	}

	quotationCode, err := helper.NextQuotationCode(tx, time.Now())
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	quotation := model.Quotation{
		QuotationCode:      quotationCode,
		CustomerID:         customer.ID,
		HallID:             hall.ID,
		QuotationType:      input.QuotationType,
		EventDate:          eventDate,
		TimeSlot:           input.TimeSlot,
		Status:             constants.QUOTATION_DRAFT,
		ValidUntil:         validUntil,
		DiscountPercentage: input.DiscountPercentage,
		TaxPercentage:      taxPercentage,
		Remarks:            input.Remarks,
		CreatedBy:          claim.AccountId,
	}
	if err := tx.Create(&quotation).Error; err != nil {
		tx.Rollback()
		log.Printf("quotation create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := createQuotationItems(tx, c, &quotation, customer.CustomerType, input.Items); err != nil {
		return err
	}
	if err := recalculateQuotationTotal(tx, &quotation); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Save(&quotation).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		First(&quotation, quotation.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Quotation created", quotation)
}

func createQuotationItems(tx *gorm.DB, c *fiber.Ctx, quotation *model.Quotation, customerType string, items []model.QuotationItemInput) error {
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

		quotationItem := model.QuotationItem{
			QuotationID:   quotation.ID,
			BillingItemID: billingItem.ID,
			Quantity:      item.Quantity,
			UnitPrice:     unitPrice,
			Remarks:       item.Remarks,
		}
		if err := tx.Create(&quotationItem).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
	}
	return nil
}

func recalculateQuotationTotal(tx *gorm.DB, quotation *model.Quotation) error {
	var items []model.QuotationItem
	if err := tx.Where("quotation_id = ?", quotation.ID).Find(&items).Error; err != nil {
		return err
	}

	lines := make([]helper.PricingLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, helper.PricingLine{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	result := helper.CalculateBookingTotals(lines, decimal.Zero,
		quotation.DiscountPercentage, quotation.TaxPercentage,
		decimal.Zero, decimal.Zero)
	quotation.TotalAmount = result.TotalAmount
	return nil
}

func EditQuotation(c *fiber.Ctx) error {
	quotationId, ok := c.Locals("quotationId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editQuotationInput").(model.EditQuotationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	tx := database.DB.Begin()

	var quotation model.Quotation
	if err := tx.First(&quotation, quotationId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if quotation.Status != constants.QUOTATION_DRAFT {
		tx.Rollback()
		return utils.FieldError(c, "status", "Only draft quotations can be edited")
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
		quotation.HallID = *input.HallID
	}
	if eventDate, ok := c.Locals("eventDate").(utils.DateOnly); ok {
		quotation.EventDate = eventDate
	}
	if validUntil, ok := c.Locals("validUntil").(utils.DateOnly); ok {
		quotation.ValidUntil = validUntil
	}
	if input.QuotationType != nil {
		quotation.QuotationType = *input.QuotationType
	}
	if input.TimeSlot != nil {
		quotation.TimeSlot = *input.TimeSlot
	}
	if input.DiscountPercentage != nil {
		quotation.DiscountPercentage = *input.DiscountPercentage
	}
	if input.TaxPercentage != nil {
		quotation.TaxPercentage = *input.TaxPercentage
	}
	if input.Remarks != nil {
		quotation.Remarks = *input.Remarks
	}

	if input.Items != nil {
		var customer model.Customer
		if err := tx.First(&customer, quotation.CustomerID).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&model.QuotationItem{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if err := createQuotationItems(tx, c, &quotation, customer.CustomerType, input.Items); err != nil {
			return err
		}
	}

	if err := recalculateQuotationTotal(tx, &quotation); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Save(&quotation).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		First(&quotation, quotation.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Quotation updated", quotation)
}

func DeleteQuotation(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	var accepted int64
	if err := tx.Model(&model.Quotation{}).
		Where("id IN ? AND status = ?", ids, constants.QUOTATION_ACCEPTED).
		Count(&accepted).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if accepted > 0 {
		tx.Rollback()
		return utils.FieldError(c, "ids", "Accepted quotations cannot be deleted")
	}

	if err := tx.Where("quotation_id IN ?", ids).Delete(&model.QuotationItem{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Where("id IN ?", ids).Delete(&model.Quotation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Quotations deleted", fiber.Map{"ids": ids})
}

// SendQuotation flips a draft to sent and emails the summary to the customer.
func SendQuotation(c *fiber.Ctx) error {
	quotationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var quotation model.Quotation
	err := database.DB.Preload("Customer").Preload("Hall").First(&quotation, quotationId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if quotation.Status != constants.QUOTATION_DRAFT {
		return utils.FieldError(c, "status", "Only draft quotations can be sent")
	}
	if quotation.Customer.Email == "" {
		return utils.FieldError(c, "customerId", "Customer has no email address")
	}

	now := time.Now()
	quotation.Status = constants.QUOTATION_SENT
	quotation.SentAt = &now
	if err := database.DB.Save(&quotation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	utils.SendQuotationEmail(quotation.Customer.Email, utils.QuotationEmailData{
		QuotationCode: quotation.QuotationCode,
		CustomerName:  quotation.Customer.Name,
		HallName:      quotation.Hall.Name,
		EventDate:     quotation.EventDate.Format("2006-01-02"),
		TimeSlot:      quotation.TimeSlot,
		TotalAmount:   quotation.TotalAmount.StringFixed(2),
		ValidUntil:    quotation.ValidUntil.Format("2006-01-02"),
	})
	return utils.SuccessResponse(c, fiber.StatusOK, "Quotation sent", quotation)
}

// AcceptQuotation converts a live quotation into a booking. The status flip
// and the booking insert commit together or not at all.
func AcceptQuotation(c *fiber.Ctx) error {
	quotationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	claim, _ := helper.GetInfoAccountFromToken(c)

	tx := database.DB.Begin()

	var quotation model.Quotation
	if err := tx.Preload("Items").First(&quotation, quotationId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if quotation.Status != constants.QUOTATION_DRAFT && quotation.Status != constants.QUOTATION_SENT {
		tx.Rollback()
		return utils.FieldError(c, "status", constants.QUOTATION_BAD_STATE)
	}
	now := time.Now()
	today := utils.NewDateOnly(now.Year(), now.Month(), now.Day())
	if quotation.ValidUntil.Before(today) {
		tx.Rollback()
		return utils.FieldError(c, "validUntil", constants.QUOTATION_EXPIRED_MSG)
	}

	available, err := helper.IsHallAvailable(tx, quotation.HallID, quotation.EventDate, quotation.TimeSlot, 0)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if !available {
		tx.Rollback()
		return utils.FieldError(c, "timeSlot", constants.HALL_NOT_AVAILABLE)
	}

	bookingCode, err := helper.NextBookingCode(tx, now)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	booking := model.Booking{
		BookingCode:        bookingCode,
		CustomerID:         quotation.CustomerID,
		HallID:             quotation.HallID,
		BookingType:        quotation.QuotationType,
		EventDate:          quotation.EventDate,
		TimeSlot:           quotation.TimeSlot,
		Status:             constants.BOOKING_PENDING,
		DiscountPercentage: quotation.DiscountPercentage,
		TaxPercentage:      quotation.TaxPercentage,
		Remarks:            quotation.Remarks,
		CreatedBy:          claim.AccountId,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		log.Printf("quotation acceptance booking create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	for _, quotationItem := range quotation.Items {
		var bookingItem model.BookingItem
		if err := copier.Copy(&bookingItem, &quotationItem); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		bookingItem.DTO = model.DTO{}
		bookingItem.BillingItem = model.BillingItem{}
		bookingItem.BookingID = booking.ID
		bookingItem.TotalPrice = helper.LineTotal(bookingItem.Quantity, bookingItem.UnitPrice)
		if err := tx.Create(&bookingItem).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
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

	quotation.Status = constants.QUOTATION_ACCEPTED
	quotation.AcceptedAt = &now
	if err := tx.Save(&quotation).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	database.DB.
		Preload("Customer").Preload("Hall").
		Preload("Items.BillingItem").
		First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Quotation accepted", booking)
}

func RejectQuotation(c *fiber.Ctx) error {
	quotationId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var quotation model.Quotation
	if err := database.DB.First(&quotation, quotationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if quotation.Status != constants.QUOTATION_DRAFT && quotation.Status != constants.QUOTATION_SENT {
		return utils.FieldError(c, "status", "Quotation cannot be rejected in its current state")
	}

	now := time.Now()
	quotation.Status = constants.QUOTATION_REJECTED
	quotation.RejectedAt = &now
	if err := database.DB.Save(&quotation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Quotation rejected", quotation)
}
