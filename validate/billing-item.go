package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBillingItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBillingItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}
		if input.InternalPrice.IsNegative() || input.ExternalPrice.IsNegative() {
			return utils.FieldError(c, "internalPrice", "Prices cannot be negative")
		}

		c.Locals("createBillingItemInput", input)
		return c.Next()
	}
}

func EditBillingItem(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditBillingItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}
		if input.InternalPrice != nil && input.InternalPrice.IsNegative() {
			return utils.FieldError(c, "internalPrice", "Prices cannot be negative")
		}
		if input.ExternalPrice != nil && input.ExternalPrice.IsNegative() {
			return utils.FieldError(c, "externalPrice", "Prices cannot be negative")
		}

		c.Locals("billingItemId", uint(id))
		c.Locals("editBillingItemInput", input)
		return c.Next()
	}
}
