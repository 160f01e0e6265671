package handler

import (
	"errors"
	"log"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCustomers(c *fiber.Ctx) error {
	filterInput := new(model.FilterCustomer)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT)
	}

	query := database.DB.Model(&model.Customer{})
	if filterInput.SearchKey != "" {
		search := "%" + filterInput.SearchKey + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR phone ILIKE ?", search, search, search)
	}
	if filterInput.CustomerType != "" {
		query = query.Where("customer_type = ?", filterInput.CustomerType)
	}
	if filterInput.Active != nil {
		query = query.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var customers []model.Customer
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).Order("code ASC").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessListResponse(c, customers, filterInput.Limit, filterInput.Page, totalCount)
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "OK", customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("createCustomerInput").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	code, err := helper.NextCustomerCode(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	customer := model.Customer{
		Code:         code,
		CustomerType: input.CustomerType,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		IsActive:     true,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		log.Printf("customer create failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Customer created", customer)
}

func EditCustomer(c *fiber.Ctx) error {
	customerId, ok := c.Locals("customerId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("editCustomerInput").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if input.CustomerType != nil {
		customer.CustomerType = *input.CustomerType
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := database.DB.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Customer updated", customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	ids := arrayId.IDs

	tx := database.DB.Begin()

	var bookingCount int64
	if err := tx.Model(&model.Booking{}).Where("customer_id IN ?", ids).Count(&bookingCount).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	var quotationCount int64
	if err := tx.Model(&model.Quotation{}).Where("customer_id IN ?", ids).Count(&quotationCount).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if bookingCount > 0 || quotationCount > 0 {
		tx.Rollback()
		return utils.FieldError(c, "ids", constants.CUSTOMER_IN_USE)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.Customer{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Customers deleted", fiber.Map{"ids": ids})
}

func ActiveCustomer(c *fiber.Ctx) error {
	customerId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	input, ok := c.Locals("activeInput").(model.ActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND)
	}

	customer.IsActive = *input.IsActive
	if err := database.DB.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Customer updated", customer)
}
