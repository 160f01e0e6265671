package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// SuccessListResponse attaches pagination meta to a list payload.
func SuccessListResponse(c *fiber.Ctx, rows any, limit, page *int, totalCount int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "OK",
		"data":    rows,
		"meta": fiber.Map{
			"pagination": fiber.Map{
				"limit":      limit,
				"page":       page,
				"totalCount": totalCount,
			},
		},
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// ValidationErrors reports field-keyed messages with a 422.
func ValidationErrors(c *fiber.Ctx, message string, fields map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": message,
		"errors":  fields,
	})
}

// FieldError is the single-field shortcut for business-rule violations.
func FieldError(c *fiber.Ctx, field, message string) error {
	return ValidationErrors(c, message, map[string][]string{field: {message}})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}
	return query
}

func Ptr[T any](v T) *T {
	return &v
}
