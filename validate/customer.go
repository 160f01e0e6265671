package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("createCustomerInput", input)
		return c.Next()
	}
}

func EditCustomer(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("customerId", uint(id))
		c.Locals("editCustomerInput", input)
		return c.Next()
	}
}
