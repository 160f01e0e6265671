package handler

import (
	"errors"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetSettings(c *fiber.Ctx) error {
	var settings []model.SystemSetting
	if err := database.DB.Order("key ASC").Find(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", settings)
}

func UpsertSetting(c *fiber.Ctx) error {
	input, ok := c.Locals("upsertSettingInput").(model.UpsertSettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var setting model.SystemSetting
	err := database.DB.Where("key = ?", input.Key).First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err == nil {
		setting.Value = input.Value
		if input.Description != "" {
			setting.Description = input.Description
		}
		if err := database.DB.Save(&setting).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "Setting updated", setting)
	}

	setting = model.SystemSetting{
		Key:         input.Key,
		Value:       input.Value,
		Description: input.Description,
	}
	if err := database.DB.Create(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Setting created", setting)
}
