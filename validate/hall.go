package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func CreateHall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHallInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}
		if input.InternalPrice.IsNegative() || input.ExternalPrice.IsNegative() || input.OvertimeRate.IsNegative() {
			return utils.FieldError(c, "internalPrice", "Prices cannot be negative")
		}

		c.Locals("createHallInput", input)
		return c.Next()
	}
}

func EditHall(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditHallInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}
		for _, price := range []*decimal.Decimal{input.InternalPrice, input.ExternalPrice, input.OvertimeRate} {
			if price != nil && price.IsNegative() {
				return utils.FieldError(c, "internalPrice", "Prices cannot be negative")
			}
		}

		c.Locals("hallId", uint(id))
		c.Locals("editHallInput", input)
		return c.Next()
	}
}

// Availability validates the calendar query parameters.
func Availability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		hallId, err := strconv.Atoi(c.Query("hallId"))
		if err != nil || hallId <= 0 {
			return utils.FieldError(c, "hallId", "hallId query parameter is required")
		}

		eventDate, err := utils.ParseDateOnly(c.Query("eventDate"))
		if err != nil {
			return utils.FieldError(c, "eventDate", "eventDate must be YYYY-MM-DD")
		}

		timeSlot := c.Query("timeSlot")
		if !utils.IsValidValueOfConstant(timeSlot, constants.TimeSlots) {
			return utils.FieldError(c, "timeSlot", "timeSlot must be morning or evening")
		}

		excludeBookingId := 0
		if raw := c.Query("excludeBookingId"); raw != "" {
			excludeBookingId, err = strconv.Atoi(raw)
			if err != nil || excludeBookingId < 0 {
				return utils.FieldError(c, "excludeBookingId", "excludeBookingId must be a number")
			}
		}

		c.Locals("hallId", uint(hallId))
		c.Locals("eventDate", eventDate)
		c.Locals("timeSlot", timeSlot)
		c.Locals("excludeBookingId", uint(excludeBookingId))
		return c.Next()
	}
}
