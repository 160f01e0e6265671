package model

import "github.com/shopspring/decimal"

type Hall struct {
	DTO
	Code            string          `gorm:"unique;not null;size:20" json:"code"`
	Name            string          `gorm:"not null" json:"name"`
	Capacity        int             `gorm:"not null" json:"capacity"`
	InternalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"internalPrice"`
	ExternalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"externalPrice"`
	SessionDuration int             `gorm:"not null;default:4" json:"sessionDuration"` // hours per slot
	OvertimeRate    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"overtimeRate"`
	Description     string          `json:"description"`
	IsActive        bool            `gorm:"default:true" json:"isActive"`
}

type CreateHallInput struct {
	Code            string          `json:"code" validate:"required,max=20"`
	Name            string          `json:"name" validate:"required"`
	Capacity        int             `json:"capacity" validate:"required,min=1"`
	InternalPrice   decimal.Decimal `json:"internalPrice" validate:"required"`
	ExternalPrice   decimal.Decimal `json:"externalPrice" validate:"required"`
	SessionDuration *int            `json:"sessionDuration" validate:"omitempty,min=1"`
	OvertimeRate    decimal.Decimal `json:"overtimeRate"`
	Description     string          `json:"description"`
}

type EditHallInput struct {
	Name            *string          `json:"name"`
	Capacity        *int             `json:"capacity" validate:"omitempty,min=1"`
	InternalPrice   *decimal.Decimal `json:"internalPrice"`
	ExternalPrice   *decimal.Decimal `json:"externalPrice"`
	SessionDuration *int             `json:"sessionDuration" validate:"omitempty,min=1"`
	OvertimeRate    *decimal.Decimal `json:"overtimeRate"`
	Description     *string          `json:"description"`
}

type FilterHall struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
