package validate

import (
	"strconv"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateDinnerPackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDinnerPackageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}
		if input.PricePerTable.IsNegative() {
			return utils.FieldError(c, "pricePerTable", "Price per table cannot be negative")
		}

		c.Locals("createDinnerPackageInput", input)
		return c.Next()
	}
}

func EditDinnerPackage(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditDinnerPackageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}
		if input.PricePerTable != nil && input.PricePerTable.IsNegative() {
			return utils.FieldError(c, "pricePerTable", "Price per table cannot be negative")
		}

		c.Locals("dinnerPackageId", uint(id))
		c.Locals("editDinnerPackageInput", input)
		return c.Next()
	}
}

func CreateCateringVendor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCateringVendorInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("createCateringVendorInput", input)
		return c.Next()
	}
}

func EditCateringVendor(idParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(idParam))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		var input model.EditCateringVendorInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		c.Locals("cateringVendorId", uint(id))
		c.Locals("editCateringVendorInput", input)
		return c.Next()
	}
}
