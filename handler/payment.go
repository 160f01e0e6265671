package handler

import (
	"errors"
	"log"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetPayments(c *fiber.Ctx) error {
	filterInput := new(model.FilterPayment)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.Payment{})
	if filterInput.BookingID != nil {
		query = query.Where("booking_id = ?", *filterInput.BookingID)
	}
	if filterInput.PaymentType != "" {
		query = query.Where("payment_type = ?", filterInput.PaymentType)
	}
	if filterInput.DateFrom != "" {
		query = query.Where("payment_date >= ?", filterInput.DateFrom)
	}
	if filterInput.DateTo != "" {
		query = query.Where("payment_date <= ?", filterInput.DateTo)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var payments []model.Payment
	err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, payments, filterInput.Limit, filterInput.Page, totalCount)
}

func GetPaymentById(c *fiber.Ctx) error {
	paymentId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var payment model.Payment
	if err := database.DB.First(&payment, paymentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", payment)
}

// CreatePayment records a payment and re-derives the booking's balance and
// paid milestones in the same transaction.
func CreatePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("createPaymentInput").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	paymentDate, ok := c.Locals("paymentDate").(utils.DateOnly)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	claim, _ := helper.GetInfoAccountFromToken(c)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, input.BookingID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FieldError(c, "bookingId", "Booking does not exist")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if booking.Status == constants.BOOKING_CANCELLED {
		tx.Rollback()
		return utils.FieldError(c, "bookingId", "Payments cannot be recorded on a cancelled booking")
	}

	paymentCode, err := helper.NextPaymentCode(tx)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	payment := model.Payment{
		PaymentCode: paymentCode,
		BookingID:   booking.ID,
		PaymentType: input.PaymentType,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		Method:      input.Method,
		Reference:   input.Reference,
		Remarks:     input.Remarks,
		CreatedBy:   claim.AccountId,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("payment create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := helper.RecalculateBookingTotals(tx, &booking); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	paymentsTotal, err := helper.PaymentsTotal(tx, booking.ID)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	helper.ApplyPaymentFlags(&booking, input.PaymentType, paymentsTotal, paymentDate)

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Payment recorded", fiber.Map{
		"payment": payment,
		"booking": booking,
	})
}
