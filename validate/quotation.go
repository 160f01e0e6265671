package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateQuotation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateQuotationInput
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
		validUntil, err := utils.ParseDateOnly(input.ValidUntil)
		if err != nil {
			return utils.FieldError(c, "validUntil", "validUntil must be YYYY-MM-DD")
		}
		if !helper.ValidPercentage(input.DiscountPercentage) {
			return utils.FieldError(c, "discountPercentage", "Discount percentage must be between 0 and 100")
		}
		if input.TaxPercentage != nil && !helper.ValidPercentage(*input.TaxPercentage) {
			return utils.FieldError(c, "taxPercentage", "Tax percentage must be between 0 and 100")
		}
		for _, item := range input.Items {
			if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
				return utils.FieldError(c, "items", "Unit prices cannot be negative")
			}
		}

		c.Locals("createQuotationInput", input)
		c.Locals("eventDate", eventDate)
		c.Locals("validUntil", validUntil)
		return c.Next()
	}
}

func EditQuotation(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditQuotationInput
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
		if input.ValidUntil != nil {
			validUntil, err := utils.ParseDateOnly(*input.ValidUntil)
			if err != nil {
				return utils.FieldError(c, "validUntil", "validUntil must be YYYY-MM-DD")
			}
			c.Locals("validUntil", validUntil)
		}
		if input.DiscountPercentage != nil && !helper.ValidPercentage(*input.DiscountPercentage) {
			return utils.FieldError(c, "discountPercentage", "Discount percentage must be between 0 and 100")
		}
		if input.TaxPercentage != nil && !helper.ValidPercentage(*input.TaxPercentage) {
			return utils.FieldError(c, "taxPercentage", "Tax percentage must be between 0 and 100")
		}
		for _, item := range input.Items {
			if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
				return utils.FieldError(c, "items", "Unit prices cannot be negative")
			}
		}

		c.Locals("quotationId", uint(id))
		c.Locals("editQuotationInput", input)
		return c.Next()
	}
}
