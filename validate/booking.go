package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		eventDate, err := utils.ParseDateOnly(input.EventDate)
		if err != nil {
			return utils.FieldError(c, "eventDate", "eventDate must be YYYY-MM-DD")
		}
		if !helper.ValidPercentage(input.DiscountPercentage) {
			return utils.FieldError(c, "discountPercentage", "Discount percentage must be between 0 and 100")
		}
		if input.TaxPercentage != nil && !helper.ValidPercentage(*input.TaxPercentage) {
			return utils.FieldError(c, "taxPercentage", "Tax percentage must be between 0 and 100")
		}
		if input.DepositAmount.IsNegative() {
			return utils.FieldError(c, "depositAmount", "Deposit amount cannot be negative")
		}
		if input.BookingType == constants.BOOKING_WITH_DINNER && input.DinnerPackage == nil {
			return utils.FieldError(c, "dinnerPackage", "Dinner package details are required for a with_dinner booking")
		}
		if input.BookingType == constants.BOOKING_STANDARD && input.DinnerPackage != nil {
			return utils.FieldError(c, "dinnerPackage", "Dinner package is not allowed on a standard booking")
		}
		for _, item := range input.Items {
			if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
				return utils.FieldError(c, "items", "Unit prices cannot be negative")
			}
		}

		c.Locals("createBookingInput", input)
		c.Locals("eventDate", eventDate)
		return c.Next()
	}
}

func EditBooking(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		if input.EventDate != nil {
			eventDate, err := utils.ParseDateOnly(*input.EventDate)
			if err != nil {
				return utils.FieldError(c, "eventDate", "eventDate must be YYYY-MM-DD")
			}
			c.Locals("eventDate", eventDate)
		}
		if input.DiscountPercentage != nil && !helper.ValidPercentage(*input.DiscountPercentage) {
			return utils.FieldError(c, "discountPercentage", "Discount percentage must be between 0 and 100")
		}
		if input.TaxPercentage != nil && !helper.ValidPercentage(*input.TaxPercentage) {
			return utils.FieldError(c, "taxPercentage", "Tax percentage must be between 0 and 100")
		}
		if input.DepositAmount != nil && input.DepositAmount.IsNegative() {
			return utils.FieldError(c, "depositAmount", "Deposit amount cannot be negative")
		}
		for _, item := range input.Items {
			if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
				return utils.FieldError(c, "items", "Unit prices cannot be negative")
			}
		}

		c.Locals("bookingId", uint(id))
		c.Locals("editBookingInput", input)
		return c.Next()
	}
}

func UpdateBookingStatus(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.UpdateBookingStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("bookingId", uint(id))
		c.Locals("statusInput", input)
		return c.Next()
	}
}
