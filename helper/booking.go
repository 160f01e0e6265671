package helper

import (
	"errors"

	"hall_manager/constants"
	"hall_manager/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// bookingTransitions is the operator-driven state machine. completed and
// cancelled are terminal.
var bookingTransitions = map[string][]string{
	constants.BOOKING_PENDING:   {constants.BOOKING_CONFIRMED, constants.BOOKING_CANCELLED},
	constants.BOOKING_CONFIRMED: {constants.BOOKING_COMPLETED, constants.BOOKING_CANCELLED},
}

func CanTransitionBookingStatus(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PaymentsTotal sums the recorded partial and full payments of a booking.
// Deposit payments mark the deposit milestone, the contractual deposit amount
// is subtracted separately in the balance formula.
func PaymentsTotal(db *gorm.DB, bookingID uint) (decimal.Decimal, error) {
	var payments []model.Payment
	err := db.Where("booking_id = ? AND payment_type IN ?",
		bookingID, []string{constants.PAYMENT_PARTIAL, constants.PAYMENT_FULL}).
		Find(&payments).Error
	if err != nil {
		return decimal.Zero, err
	}
	return SumPayments(payments), nil
}

func SumPayments(payments []model.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total.Round(2)
}

// GetSettingDecimal reads a numeric system setting with a fallback.
func GetSettingDecimal(db *gorm.DB, key string, fallback decimal.Decimal) decimal.Decimal {
	var setting model.SystemSetting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	value, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return fallback
	}
	return value
}

// RecalculateBookingTotals recomputes and fills every money field on the
// booking from its current items, dinner package and payment history. Must
// run inside the same transaction as any item mutation.
func RecalculateBookingTotals(tx *gorm.DB, booking *model.Booking) error {
	var items []model.BookingItem
	if err := tx.Where("booking_id = ?", booking.ID).Find(&items).Error; err != nil {
		return err
	}

	lines := make([]PricingLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, PricingLine{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}

	dinnerTotal := decimal.Zero
	if booking.BookingType == constants.BOOKING_WITH_DINNER {
		var dinner model.BookingDinnerPackage
		err := tx.Where("booking_id = ?", booking.ID).First(&dinner).Error
		if err == nil {
			dinnerTotal = dinner.TotalAmount
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	paymentsTotal, err := PaymentsTotal(tx, booking.ID)
	if err != nil {
		return err
	}

	result := CalculateBookingTotals(lines, dinnerTotal,
		booking.DiscountPercentage, booking.TaxPercentage,
		booking.DepositAmount, paymentsTotal)

	booking.SubtotalAmount = result.Subtotal
	booking.DiscountAmount = result.DiscountAmount
	booking.TaxAmount = result.TaxAmount
	booking.TotalAmount = result.TotalAmount
	booking.BalanceAmount = result.Balance
	return nil
}
