package model

import (
	"hall_manager/utils"

	"github.com/shopspring/decimal"
)

type Payment struct {
	DTO
	PaymentCode string          `gorm:"unique;size:20" json:"paymentCode"`
	BookingID   uint            `gorm:"not null;index" json:"bookingId"`
	Booking     Booking         `gorm:"foreignKey:BookingID" json:"-"`
	PaymentType string          `gorm:"not null" json:"paymentType"` // deposit | partial | full
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentDate utils.DateOnly  `gorm:"not null" json:"paymentDate"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	Remarks     string          `json:"remarks"`
	CreatedBy   uint            `json:"createdBy"`
}

type CreatePaymentInput struct {
	BookingID   uint            `json:"bookingId" validate:"required"`
	PaymentType string          `json:"paymentType" validate:"required,oneof=deposit partial full"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	PaymentDate string          `json:"paymentDate" validate:"required"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	Remarks     string          `json:"remarks"`
}

type FilterPayment struct {
	Pagination
	BookingID   *uint  `json:"bookingId"`
	PaymentType string `json:"paymentType"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
}
