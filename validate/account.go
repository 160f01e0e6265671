package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.MISSING_LOGIN_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("createAccountInput", input)
		return c.Next()
	}
}

func EditAccount(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditAccountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("accountId", uint(id))
		c.Locals("editAccountInput", input)
		return c.Next()
	}
}

func UpsertSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpsertSettingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("upsertSettingInput", input)
		return c.Next()
	}
}
