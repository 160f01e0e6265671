package model

import (
	"hall_manager/utils"
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	DTO
	BookingCode string   `gorm:"unique;size:20" json:"bookingCode"`
	CustomerID  uint     `gorm:"not null" json:"customerId"`
	Customer    Customer `gorm:"foreignKey:CustomerID" json:"customer"`
	HallID      uint     `gorm:"not null;uniqueIndex:uniq_hall_slot,where:status <> 'cancelled'" json:"hallId"`
	Hall        Hall     `gorm:"foreignKey:HallID" json:"hall"`

	BookingType string         `gorm:"not null;default:standard" json:"bookingType"` // standard | with_dinner
	EventDate   utils.DateOnly `gorm:"not null;uniqueIndex:uniq_hall_slot,where:status <> 'cancelled'" json:"eventDate"`
	TimeSlot    string         `gorm:"not null;uniqueIndex:uniq_hall_slot,where:status <> 'cancelled'" json:"timeSlot"` // morning | evening
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Status      string         `gorm:"not null;default:pending" json:"status"` // pending | confirmed | cancelled | completed

	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discountPercentage"`
	TaxPercentage      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"taxPercentage"`
	DepositAmount      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"depositAmount"`

	SubtotalAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"subtotalAmount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discountAmount"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"taxAmount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"totalAmount"`
	BalanceAmount  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"balanceAmount"`

	DepositPaid      bool            `gorm:"default:false" json:"depositPaid"`
	DepositPaidDate  *utils.DateOnly `json:"depositPaidDate,omitempty"`
	FiftyPercentPaid bool            `gorm:"default:false" json:"fiftyPercentPaid"`
	FiftyPaidDate    *utils.DateOnly `json:"fiftyPaidDate,omitempty"`
	FullyPaid        bool            `gorm:"default:false" json:"fullyPaid"`
	FullyPaidDate    *utils.DateOnly `json:"fullyPaidDate,omitempty"`

	Remarks     string `json:"remarks"`
	CreatedBy   uint   `json:"createdBy"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	Items         []BookingItem         `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"items"`
	DinnerPackage *BookingDinnerPackage `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"dinnerPackage,omitempty"`
	Payments      []Payment             `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

type BookingItem struct {
	DTO
	BookingID     uint            `gorm:"not null;index" json:"bookingId"`
	BillingItemID uint            `gorm:"not null" json:"billingItemId"`
	BillingItem   BillingItem     `gorm:"foreignKey:BillingItemID" json:"billingItem"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	Remarks       string          `json:"remarks"`
}

type BookingDinnerPackage struct {
	DTO
	BookingID        uint            `gorm:"not null;uniqueIndex" json:"bookingId"`
	DinnerPackageID  uint            `gorm:"not null" json:"dinnerPackageId"`
	DinnerPackage    DinnerPackage   `gorm:"foreignKey:DinnerPackageID" json:"dinnerPackage"`
	CateringVendorID *uint           `json:"cateringVendorId,omitempty"`
	CateringVendor   *CateringVendor `gorm:"foreignKey:CateringVendorID" json:"cateringVendor,omitempty"`
	NumberOfTables   int             `gorm:"not null" json:"numberOfTables"`
	// PricePerTable snapshots the package price at booking time; later
	// package edits never touch existing bookings.
	PricePerTable       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"pricePerTable"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	SpecialMenuRequests string          `json:"specialMenuRequests"`
}

type BookingItemInput struct {
	BillingItemID uint             `json:"billingItemId" validate:"required"`
	Quantity      int              `json:"quantity" validate:"required,min=1"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"` // defaulted from the customer tier when omitted
	Remarks       string           `json:"remarks"`
}

type BookingDinnerPackageInput struct {
	DinnerPackageID     uint   `json:"dinnerPackageId" validate:"required"`
	CateringVendorID    *uint  `json:"cateringVendorId"`
	NumberOfTables      int    `json:"numberOfTables" validate:"required,min=1"`
	SpecialMenuRequests string `json:"specialMenuRequests"`
}

type CreateBookingInput struct {
	CustomerID         uint                       `json:"customerId" validate:"required"`
	HallID             uint                       `json:"hallId" validate:"required"`
	BookingType        string                     `json:"bookingType" validate:"required,oneof=standard with_dinner"`
	EventDate          string                     `json:"eventDate" validate:"required"`
	TimeSlot           string                     `json:"timeSlot" validate:"required,oneof=morning evening"`
	StartTime          string                     `json:"startTime"`
	EndTime            string                     `json:"endTime"`
	DiscountPercentage decimal.Decimal            `json:"discountPercentage"`
	TaxPercentage      *decimal.Decimal           `json:"taxPercentage"` // defaulted from settings when omitted
	DepositAmount      decimal.Decimal            `json:"depositAmount"`
	Remarks            string                     `json:"remarks"`
	Items              []BookingItemInput         `json:"items" validate:"required,min=1,dive"`
	DinnerPackage      *BookingDinnerPackageInput `json:"dinnerPackage"`
}

type EditBookingInput struct {
	HallID             *uint                      `json:"hallId"`
	BookingType        *string                    `json:"bookingType" validate:"omitempty,oneof=standard with_dinner"`
	EventDate          *string                    `json:"eventDate"`
	TimeSlot           *string                    `json:"timeSlot" validate:"omitempty,oneof=morning evening"`
	StartTime          *string                    `json:"startTime"`
	EndTime            *string                    `json:"endTime"`
	DiscountPercentage *decimal.Decimal           `json:"discountPercentage"`
	TaxPercentage      *decimal.Decimal           `json:"taxPercentage"`
	DepositAmount      *decimal.Decimal           `json:"depositAmount"`
	Remarks            *string                    `json:"remarks"`
	Items              []BookingItemInput         `json:"items" validate:"omitempty,min=1,dive"`
	DinnerPackage      *BookingDinnerPackageInput `json:"dinnerPackage"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type FilterBooking struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	HallID     *uint  `json:"hallId"`
	CustomerID *uint  `json:"customerId"`
	Status     string `json:"status"`
	TimeSlot   string `json:"timeSlot"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
}
