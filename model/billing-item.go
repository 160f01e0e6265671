package model

import "github.com/shopspring/decimal"

type BillingItem struct {
	DTO
	Code          string          `gorm:"unique;not null;size:20" json:"code"`
	Name          string          `gorm:"not null" json:"name"`
	Category      string          `gorm:"not null" json:"category"` // hall | equipment | furniture | service | other
	InternalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"internalPrice"`
	ExternalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"externalPrice"`
	Unit          string          `gorm:"not null;default:unit" json:"unit"`
	IsActive      bool            `gorm:"default:true" json:"isActive"`
}

type CreateBillingItemInput struct {
	Code          string          `json:"code" validate:"required,max=20"`
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category" validate:"required,oneof=hall equipment furniture service other"`
	InternalPrice decimal.Decimal `json:"internalPrice" validate:"required"`
	ExternalPrice decimal.Decimal `json:"externalPrice" validate:"required"`
	Unit          string          `json:"unit"`
}

type EditBillingItemInput struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category" validate:"omitempty,oneof=hall equipment furniture service other"`
	InternalPrice *decimal.Decimal `json:"internalPrice"`
	ExternalPrice *decimal.Decimal `json:"externalPrice"`
	Unit          *string          `json:"unit"`
}

type FilterBillingItem struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Category  string `json:"category"`
	Active    *bool  `json:"active"`
}
