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

func GetBillingItems(c *fiber.Ctx) error {
	filterInput := new(model.FilterBillingItem)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.BillingItem{})
	if filterInput.SearchKey != "" {
		search := "%" + filterInput.SearchKey + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}
	if filterInput.Category != "" {
		query = query.Where("category = ?", filterInput.Category)
	}
	if filterInput.Active != nil {
		query = query.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var items []model.BillingItem
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Order("code ASC").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, items, filterInput.Limit, filterInput.Page, totalCount)
}

func GetBillingItemById(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var item model.BillingItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", item)
}

func CreateBillingItem(c *fiber.Ctx) error {
	input, ok := c.Locals("createBillingItemInput").(model.CreateBillingItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var existing model.BillingItem
	if err := database.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return utils.FieldError(c, "code", "A billing item with this code already exists")
	}

	unit := input.Unit
	if unit == "" {
		unit = "unit"
	}

	item := model.BillingItem{
		Code:          input.Code,
		Name:          input.Name,
		Category:      input.Category,
		InternalPrice: input.InternalPrice,
		ExternalPrice: input.ExternalPrice,
		Unit:          unit,
		IsActive:      true,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		log.Printf("billing item create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Billing item created", item)
}

func EditBillingItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("billingItemId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editBillingItemInput").(model.EditBillingItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var item model.BillingItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.InternalPrice != nil {
		item.InternalPrice = *input.InternalPrice
	}
	if input.ExternalPrice != nil {
		item.ExternalPrice = *input.ExternalPrice
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}

	// Price edits only affect future bookings, existing lines keep their
	// written unit_price.
	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Billing item updated", item)
}

// DeleteBillingItem refuses while any booking or quotation line references
// the item.
func DeleteBillingItem(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	var bookingRefs int64
	if err := tx.Model(&model.BookingItem{}).Where("billing_item_id IN ?", ids).Count(&bookingRefs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	var quotationRefs int64
	if err := tx.Model(&model.QuotationItem{}).Where("billing_item_id IN ?", ids).Count(&quotationRefs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if bookingRefs > 0 || quotationRefs > 0 {
		tx.Rollback()
		return utils.FieldError(c, "ids", constants.BILLING_ITEM_IN_USE)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.BillingItem{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Billing items deleted", fiber.Map{"ids": ids})
}

func ActiveBillingItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("activeInput").(model.ActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var item model.BillingItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	item.IsActive = *input.IsActive
	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Billing item updated", item)
}
