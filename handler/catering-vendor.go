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

func GetCateringVendors(c *fiber.Ctx) error {
	filterInput := new(model.FilterCateringVendor)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.CateringVendor{})
	if filterInput.SearchKey != "" {
		query = query.Where("name ILIKE ?", "%"+filterInput.SearchKey+"%")
	}
	if filterInput.VendorType != "" {
		query = query.Where("vendor_type = ?", filterInput.VendorType)
	}
	if filterInput.Active != nil {
		query = query.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var vendors []model.CateringVendor
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Order("name ASC").Find(&vendors).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, vendors, filterInput.Limit, filterInput.Page, totalCount)
}

func GetCateringVendorById(c *fiber.Ctx) error {
	vendorId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var vendor model.CateringVendor
	if err := database.DB.First(&vendor, vendorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", vendor)
}

func CreateCateringVendor(c *fiber.Ctx) error {
	input, ok := c.Locals("createCateringVendorInput").(model.CreateCateringVendorInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	vendor := model.CateringVendor{
		Name:       input.Name,
		VendorType: input.VendorType,
		Contact:    input.Contact,
		Phone:      input.Phone,
		Email:      input.Email,
		IsActive:   true,
	}
	if err := database.DB.Create(&vendor).Error; err != nil {
		log.Printf("catering vendor create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Catering vendor created", vendor)
}

func EditCateringVendor(c *fiber.Ctx) error {
	vendorId, ok := c.Locals("cateringVendorId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editCateringVendorInput").(model.EditCateringVendorInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var vendor model.CateringVendor
	if err := database.DB.First(&vendor, vendorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.VendorType != nil {
		vendor.VendorType = *input.VendorType
	}
	if input.Contact != nil {
		vendor.Contact = *input.Contact
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}

	if err := database.DB.Save(&vendor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Catering vendor updated", vendor)
}

func DeleteCateringVendor(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	var refs int64
	if err := tx.Model(&model.BookingDinnerPackage{}).Where("catering_vendor_id IN ?", ids).Count(&refs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if refs > 0 {
		tx.Rollback()
		return utils.FieldError(c, "ids", constants.VENDOR_IN_USE)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.CateringVendor{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Catering vendors deleted", fiber.Map{"ids": ids})
}

func ActiveCateringVendor(c *fiber.Ctx) error {
	vendorId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("activeInput").(model.ActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var vendor model.CateringVendor
	if err := database.DB.First(&vendor, vendorId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	vendor.IsActive = *input.IsActive
	if err := database.DB.Save(&vendor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Catering vendor updated", vendor)
}
