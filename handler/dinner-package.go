package handler

import (
	"errors"
	"log"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetDinnerPackages(c *fiber.Ctx) error {
	filterInput := new(model.FilterDinnerPackage)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.DinnerPackage{})
	if filterInput.SearchKey != "" {
		search := "%" + filterInput.SearchKey + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}
	if filterInput.Active != nil {
		query = query.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var packages []model.DinnerPackage
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Order("code ASC").Find(&packages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, packages, filterInput.Limit, filterInput.Page, totalCount)
}

func GetDinnerPackageById(c *fiber.Ctx) error {
	packageId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var dinnerPackage model.DinnerPackage
	if err := database.DB.First(&dinnerPackage, packageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", dinnerPackage)
}

func CreateDinnerPackage(c *fiber.Ctx) error {
	input, ok := c.Locals("createDinnerPackageInput").(model.CreateDinnerPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var existing model.DinnerPackage
	if err := database.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return utils.FieldError(c, "code", "A dinner package with this code already exists")
	}

	dinnerPackage := model.DinnerPackage{
		Code:          input.Code,
		Name:          input.Name,
		PricePerTable: input.PricePerTable,
		MinimumTables: constants.DEFAULT_MINIMUM_TABLES,
		Description:   input.Description,
		IsActive:      true,
	}
	if input.MinimumTables != nil {
		dinnerPackage.MinimumTables = *input.MinimumTables
	}

	if err := database.DB.Create(&dinnerPackage).Error; err != nil {
		log.Printf("dinner package create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Dinner package created", dinnerPackage)
}

func EditDinnerPackage(c *fiber.Ctx) error {
	packageId, ok := c.Locals("dinnerPackageId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editDinnerPackageInput").(model.EditDinnerPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var dinnerPackage model.DinnerPackage
	if err := database.DB.First(&dinnerPackage, packageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if input.Name != nil {
		dinnerPackage.Name = *input.Name
	}
	if input.PricePerTable != nil {
		// Existing bookings keep their snapshotted per-table price.
		dinnerPackage.PricePerTable = *input.PricePerTable
	}
	if input.MinimumTables != nil {
		dinnerPackage.MinimumTables = *input.MinimumTables
	}
	if input.Description != nil {
		dinnerPackage.Description = *input.Description
	}

	if err := database.DB.Save(&dinnerPackage).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Dinner package updated", dinnerPackage)
}

func DeleteDinnerPackage(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	var refs int64
	if err := tx.Model(&model.BookingDinnerPackage{}).Where("dinner_package_id IN ?", ids).Count(&refs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if refs > 0 {
		tx.Rollback()
		return utils.FieldError(c, "ids", constants.DINNER_PACKAGE_IN_USE)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.DinnerPackage{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Dinner packages deleted", fiber.Map{"ids": ids})
}

func ActiveDinnerPackage(c *fiber.Ctx) error {
	packageId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("activeInput").(model.ActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var dinnerPackage model.DinnerPackage
	if err := database.DB.First(&dinnerPackage, packageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	dinnerPackage.IsActive = *input.IsActive
	if err := database.DB.Save(&dinnerPackage).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Dinner package updated", dinnerPackage)
}
