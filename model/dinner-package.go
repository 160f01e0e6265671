package model

import "github.com/shopspring/decimal"

type DinnerPackage struct {
	DTO
	Code          string          `gorm:"unique;not null;size:20" json:"code"`
	Name          string          `gorm:"not null" json:"name"`
	PricePerTable decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"pricePerTable"`
	MinimumTables int             `gorm:"not null;default:50" json:"minimumTables"`
	Description   string          `json:"description"`
	IsActive      bool            `gorm:"default:true" json:"isActive"`
}

type CreateDinnerPackageInput struct {
	Code          string          `json:"code" validate:"required,max=20"`
	Name          string          `json:"name" validate:"required"`
	PricePerTable decimal.Decimal `json:"pricePerTable" validate:"required"`
	MinimumTables *int            `json:"minimumTables" validate:"omitempty,min=1"`
	Description   string          `json:"description"`
}

type EditDinnerPackageInput struct {
	Name          *string          `json:"name"`
	PricePerTable *decimal.Decimal `json:"pricePerTable"`
	MinimumTables *int             `json:"minimumTables" validate:"omitempty,min=1"`
	Description   *string          `json:"description"`
}

type CateringVendor struct {
	DTO
	Name       string `gorm:"not null" json:"name"`
	VendorType string `gorm:"not null" json:"vendorType"` // vegetarian | non_vegetarian
	Contact    string `json:"contact"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
}

type CreateCateringVendorInput struct {
	Name       string `json:"name" validate:"required"`
	VendorType string `json:"vendorType" validate:"required,oneof=vegetarian non_vegetarian"`
	Contact    string `json:"contact"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type FilterDinnerPackage struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}

type FilterCateringVendor struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	VendorType string `json:"vendorType"`
	Active     *bool  `json:"active"`
}

type EditCateringVendorInput struct {
	Name       *string `json:"name"`
	VendorType *string `json:"vendorType" validate:"omitempty,oneof=vegetarian non_vegetarian"`
	Contact    *string `json:"contact"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" validate:"omitempty,email"`
}
