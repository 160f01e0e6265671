package validate

import (
	"strconv"
	"strings"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// FieldsFromValidationError flattens validator errors into the field-keyed
// shape of the error envelope.
func FieldsFromValidationError(err error) map[string][]string {
	fields := map[string][]string{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = []string{err.Error()}
		return fields
	}
	for _, fe := range validationErrors {
		name := fe.Field()
		if len(name) > 0 {
			name = strings.ToLower(name[:1]) + name[1:]
		}
		var message string
		switch fe.Tag() {
		case "required":
			message = "This field is required"
		case "email":
			message = "Must be a valid email address"
		case "min":
			message = "Must be at least " + fe.Param()
		case "max":
			message = "Must be at most " + fe.Param()
		case "oneof":
			message = "Must be one of: " + fe.Param()
		default:
			message = "Invalid value"
		}
		fields[name] = append(fields[name], message)
	}
	return fields
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}

func Active(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.ActiveInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("inputId", uint(id))
		c.Locals("activeInput", input)
		return c.Next()
	}
}
