package helper

import (
	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PricingLine is one billed line of a booking or quotation.
type PricingLine struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// PricingResult carries every computed money field of a booking.
type PricingResult struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	Balance        decimal.Decimal
}

// LineTotal computes quantity x unit price, fixed at two decimal places.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// DinnerTotal computes the dinner line from the snapshotted per-table price.
func DinnerTotal(pricePerTable decimal.Decimal, numberOfTables int) decimal.Decimal {
	return pricePerTable.Mul(decimal.NewFromInt(int64(numberOfTables))).Round(2)
}

// RequiredTableMinimum resolves a package's effective table minimum. Packages
// without a configured minimum fall back to the house default.
func RequiredTableMinimum(packageMinimum int) int {
	if packageMinimum <= 0 {
		return constants.DEFAULT_MINIMUM_TABLES
	}
	return packageMinimum
}

// MeetsTableMinimum reports whether a requested table count satisfies the
// package's effective minimum.
func MeetsTableMinimum(numberOfTables, packageMinimum int) bool {
	return numberOfTables >= RequiredTableMinimum(packageMinimum)
}

// CalculateBookingTotals computes subtotal, discount, tax, total and balance.
// dinnerTotal is zero for standard bookings. paymentsTotal covers recorded
// partial and full payments; the contractual deposit is passed separately.
// Balance is reported as computed, a negative value means overpayment.
func CalculateBookingTotals(items []PricingLine, dinnerTotal, discountPercentage, taxPercentage, depositAmount, paymentsTotal decimal.Decimal) PricingResult {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item.Quantity, item.UnitPrice))
	}
	subtotal = subtotal.Add(dinnerTotal).Round(2)

	discountAmount := subtotal.Mul(discountPercentage).Div(oneHundred).Round(2)
	taxableBase := subtotal.Sub(discountAmount)
	taxAmount := taxableBase.Mul(taxPercentage).Div(oneHundred).Round(2)
	totalAmount := taxableBase.Add(taxAmount).Round(2)
	balance := totalAmount.Sub(depositAmount).Sub(paymentsTotal).Round(2)

	return PricingResult{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		TotalAmount:    totalAmount,
		Balance:        balance,
	}
}

// TierPrice picks the price for the customer's tier.
func TierPrice(customerType string, internalPrice, externalPrice decimal.Decimal) decimal.Decimal {
	if customerType == constants.CUSTOMER_INTERNAL {
		return internalPrice
	}
	return externalPrice
}

// ValidPercentage reports whether p is usable as a discount or tax rate.
func ValidPercentage(p decimal.Decimal) bool {
	return p.GreaterThanOrEqual(decimal.Zero) && p.LessThanOrEqual(oneHundred)
}

// ApplyPaymentFlags raises the booking's paid milestones from the recorded
// payment history. Flags never flip back off once set.
func ApplyPaymentFlags(booking *model.Booking, paymentType string, paymentsTotal decimal.Decimal, date utils.DateOnly) {
	if paymentType == constants.PAYMENT_DEPOSIT && !booking.DepositPaid {
		booking.DepositPaid = true
		booking.DepositPaidDate = &date
	}

	half := booking.TotalAmount.Div(decimal.NewFromInt(2))
	covered := paymentsTotal.Add(booking.DepositAmount)
	if !booking.FiftyPercentPaid && covered.GreaterThanOrEqual(half) {
		booking.FiftyPercentPaid = true
		booking.FiftyPaidDate = &date
	}
	if !booking.FullyPaid && covered.GreaterThanOrEqual(booking.TotalAmount) {
		booking.FullyPaid = true
		booking.FullyPaidDate = &date
	}
}
