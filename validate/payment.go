package validate

import (
	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrors(c, constants.ERROR_INVALID_INPUT, FieldsFromValidationError(err))
		}

		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return utils.FieldError(c, "amount", "Amount must be greater than zero")
		}
		paymentDate, err := utils.ParseDateOnly(input.PaymentDate)
		if err != nil {
			return utils.FieldError(c, "paymentDate", "paymentDate must be YYYY-MM-DD")
		}

		c.Locals("createPaymentInput", input)
		c.Locals("paymentDate", paymentDate)
		return c.Next()
	}
}
