package handler

import (
	"log"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAccounts(c *fiber.Ctx) error {
	var accounts []model.Account
	if err := database.DB.Order("id ASC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("createAccountInput").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	existing, err := helper.GetAccountByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if existing != nil {
		return utils.FieldError(c, "email", "An account with this email already exists")
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	account := model.Account{
		Email:    input.Email,
		Password: hashed,
		Name:     input.Name,
		Role:     input.Role,
		IsActive: true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		log.Printf("account create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Account created", account)
}

func EditAccount(c *fiber.Ctx) error {
	accountId, ok := c.Locals("accountId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editAccountInput").(model.EditAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Role != nil {
		account.Role = *input.Role
	}
	if input.Password != nil {
		hashed, err := helper.HashPassword(*input.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		account.Password = hashed
	}

	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Account updated", account)
}

func ActiveAccount(c *fiber.Ctx) error {
	accountId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("activeInput").(model.ActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	account.IsActive = *input.IsActive
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Account updated", account)
}
