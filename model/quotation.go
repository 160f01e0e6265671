package model

import (
	"hall_manager/utils"
	"time"

	"github.com/shopspring/decimal"
)

type Quotation struct {
	DTO
	QuotationCode string   `gorm:"unique;size:20" json:"quotationCode"`
	CustomerID    uint     `gorm:"not null" json:"customerId"`
	Customer      Customer `gorm:"foreignKey:CustomerID" json:"customer"`
	HallID        uint     `gorm:"not null" json:"hallId"`
	Hall          Hall     `gorm:"foreignKey:HallID" json:"hall"`

	QuotationType string         `gorm:"not null;default:standard" json:"quotationType"` // standard | with_dinner
	EventDate     utils.DateOnly `gorm:"not null" json:"eventDate"`
	TimeSlot      string         `gorm:"not null" json:"timeSlot"`
	Status        string         `gorm:"not null;default:draft" json:"status"` // draft | sent | accepted | rejected | expired
	ValidUntil    utils.DateOnly `gorm:"not null" json:"validUntil"`

	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discountPercentage"`
	TaxPercentage      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"taxPercentage"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"totalAmount"`

	SentAt     *time.Time `json:"sentAt,omitempty"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`

	Remarks   string `json:"remarks"`
	CreatedBy uint   `json:"createdBy"`

	Items []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"items"`
}

type QuotationItem struct {
	DTO
	QuotationID   uint            `gorm:"not null;index" json:"quotationId"`
	BillingItemID uint            `gorm:"not null" json:"billingItemId"`
	BillingItem   BillingItem     `gorm:"foreignKey:BillingItemID" json:"billingItem"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	Remarks       string          `json:"remarks"`
}

type QuotationItemInput struct {
	BillingItemID uint             `json:"billingItemId" validate:"required"`
	Quantity      int              `json:"quantity" validate:"required,min=1"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	Remarks       string           `json:"remarks"`
}

type CreateQuotationInput struct {
	CustomerID         uint                 `json:"customerId" validate:"required"`
	HallID             uint                 `json:"hallId" validate:"required"`
	QuotationType      string               `json:"quotationType" validate:"required,oneof=standard with_dinner"`
	EventDate          string               `json:"eventDate" validate:"required"`
	TimeSlot           string               `json:"timeSlot" validate:"required,oneof=morning evening"`
	ValidUntil         string               `json:"validUntil" validate:"required"`
	DiscountPercentage decimal.Decimal      `json:"discountPercentage"`
	TaxPercentage      *decimal.Decimal     `json:"taxPercentage"`
	Remarks            string               `json:"remarks"`
	Items              []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
}

type EditQuotationInput struct {
	HallID             *uint                `json:"hallId"`
	QuotationType      *string              `json:"quotationType" validate:"omitempty,oneof=standard with_dinner"`
	EventDate          *string              `json:"eventDate"`
	TimeSlot           *string              `json:"timeSlot" validate:"omitempty,oneof=morning evening"`
	ValidUntil         *string              `json:"validUntil"`
	DiscountPercentage *decimal.Decimal     `json:"discountPercentage"`
	TaxPercentage      *decimal.Decimal     `json:"taxPercentage"`
	Remarks            *string              `json:"remarks"`
	Items              []QuotationItemInput `json:"items" validate:"omitempty,min=1,dive"`
}

type FilterQuotation struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	CustomerID *uint  `json:"customerId"`
	Status     string `json:"status"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
}
