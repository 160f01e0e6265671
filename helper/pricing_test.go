package helper

import (
	"testing"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		unitPrice string
		expected  string
	}{
		{"whole numbers", 4, "250", "1000"},
		{"two decimal places", 3, "99.99", "299.97"},
		{"rounds half up", 3, "0.335", "1.01"},
		{"zero quantity", 0, "500", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LineTotal(tc.quantity, dec(tc.unitPrice))
			if !got.Equal(dec(tc.expected)) {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestDinnerTotal(t *testing.T) {
	got := DinnerTotal(dec("88.50"), 60)
	if !got.Equal(dec("5310.00")) {
		t.Fatalf("expected 5310.00, got %s", got)
	}
}

func TestCalculateBookingTotals(t *testing.T) {
	t.Run("discount and tax on subtotal 1000", func(t *testing.T) {
		items := []PricingLine{
			{Quantity: 2, UnitPrice: dec("300")},
			{Quantity: 1, UnitPrice: dec("400")},
		}
		result := CalculateBookingTotals(items, decimal.Zero, dec("10"), dec("6"), decimal.Zero, decimal.Zero)

		if !result.Subtotal.Equal(dec("1000")) {
			t.Fatalf("subtotal: expected 1000, got %s", result.Subtotal)
		}
		if !result.DiscountAmount.Equal(dec("100.00")) {
			t.Fatalf("discount: expected 100.00, got %s", result.DiscountAmount)
		}
		if !result.TaxAmount.Equal(dec("54.00")) {
			t.Fatalf("tax: expected 54.00, got %s", result.TaxAmount)
		}
		if !result.TotalAmount.Equal(dec("954.00")) {
			t.Fatalf("total: expected 954.00, got %s", result.TotalAmount)
		}
		if !result.Balance.Equal(dec("954.00")) {
			t.Fatalf("balance: expected 954.00, got %s", result.Balance)
		}
	})

	t.Run("dinner total joins the subtotal", func(t *testing.T) {
		items := []PricingLine{{Quantity: 1, UnitPrice: dec("500")}}
		result := CalculateBookingTotals(items, dec("2500"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
		if !result.Subtotal.Equal(dec("3000")) {
			t.Fatalf("subtotal: expected 3000, got %s", result.Subtotal)
		}
		if !result.TotalAmount.Equal(dec("3000")) {
			t.Fatalf("total: expected 3000, got %s", result.TotalAmount)
		}
	})

	t.Run("deposit and payments reduce the balance", func(t *testing.T) {
		items := []PricingLine{{Quantity: 1, UnitPrice: dec("1000")}}
		result := CalculateBookingTotals(items, decimal.Zero, decimal.Zero, decimal.Zero, dec("300"), dec("200"))
		if !result.Balance.Equal(dec("500.00")) {
			t.Fatalf("balance: expected 500.00, got %s", result.Balance)
		}
	})

	t.Run("overpayment goes negative", func(t *testing.T) {
		items := []PricingLine{{Quantity: 1, UnitPrice: dec("100")}}
		result := CalculateBookingTotals(items, decimal.Zero, decimal.Zero, decimal.Zero, dec("50"), dec("80"))
		if !result.Balance.Equal(dec("-30.00")) {
			t.Fatalf("balance: expected -30.00, got %s", result.Balance)
		}
	})

	t.Run("decimal exact with repeating fractions", func(t *testing.T) {
		items := []PricingLine{{Quantity: 3, UnitPrice: dec("33.33")}}
		result := CalculateBookingTotals(items, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
		if !result.Subtotal.Equal(dec("99.99")) {
			t.Fatalf("subtotal: expected 99.99, got %s", result.Subtotal)
		}
	})
}

func TestMeetsTableMinimum(t *testing.T) {
	cases := []struct {
		name           string
		numberOfTables int
		packageMinimum int
		expected       bool
	}{
		{"below the package minimum", 49, 50, false},
		{"exactly at the package minimum", 50, 50, true},
		{"above the package minimum", 120, 50, true},
		{"below a custom minimum", 29, 30, false},
		{"at a custom minimum", 30, 30, true},
		{"zero minimum falls back to house default", constants.DEFAULT_MINIMUM_TABLES - 1, 0, false},
		{"zero minimum met at house default", constants.DEFAULT_MINIMUM_TABLES, 0, true},
		{"negative minimum treated as unset", constants.DEFAULT_MINIMUM_TABLES, -5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetsTableMinimum(tc.numberOfTables, tc.packageMinimum); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestRequiredTableMinimum(t *testing.T) {
	if got := RequiredTableMinimum(30); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := RequiredTableMinimum(0); got != constants.DEFAULT_MINIMUM_TABLES {
		t.Fatalf("expected %d, got %d", constants.DEFAULT_MINIMUM_TABLES, got)
	}
}

func TestTierPrice(t *testing.T) {
	internal := dec("80")
	external := dec("120")

	if got := TierPrice(constants.CUSTOMER_INTERNAL, internal, external); !got.Equal(internal) {
		t.Fatalf("internal tier: expected %s, got %s", internal, got)
	}
	if got := TierPrice(constants.CUSTOMER_EXTERNAL, internal, external); !got.Equal(external) {
		t.Fatalf("external tier: expected %s, got %s", external, got)
	}
}

func TestValidPercentage(t *testing.T) {
	cases := []struct {
		value    string
		expected bool
	}{
		{"0", true},
		{"100", true},
		{"55.5", true},
		{"-0.01", false},
		{"100.01", false},
	}

	for _, tc := range cases {
		if got := ValidPercentage(dec(tc.value)); got != tc.expected {
			t.Fatalf("%s: expected %v, got %v", tc.value, tc.expected, got)
		}
	}
}

func TestApplyPaymentFlags(t *testing.T) {
	date := utils.NewDateOnly(2025, 3, 10)

	t.Run("deposit payment sets the deposit flag only", func(t *testing.T) {
		booking := model.Booking{TotalAmount: dec("1000")}
		ApplyPaymentFlags(&booking, constants.PAYMENT_DEPOSIT, decimal.Zero, date)
		if !booking.DepositPaid {
			t.Fatal("expected deposit flag set")
		}
		if booking.FiftyPercentPaid || booking.FullyPaid {
			t.Fatal("expected no other flags")
		}
		if booking.DepositPaidDate == nil {
			t.Fatal("expected deposit paid date set")
		}
	})

	t.Run("half coverage sets fifty percent flag", func(t *testing.T) {
		booking := model.Booking{TotalAmount: dec("1000"), DepositAmount: dec("300")}
		ApplyPaymentFlags(&booking, constants.PAYMENT_PARTIAL, dec("200"), date)
		if !booking.FiftyPercentPaid {
			t.Fatal("expected fifty percent flag set")
		}
		if booking.FullyPaid {
			t.Fatal("expected not fully paid")
		}
	})

	t.Run("full coverage sets fully paid", func(t *testing.T) {
		booking := model.Booking{TotalAmount: dec("1000"), DepositAmount: dec("300")}
		ApplyPaymentFlags(&booking, constants.PAYMENT_FULL, dec("700"), date)
		if !booking.FullyPaid {
			t.Fatal("expected fully paid")
		}
		if booking.FullyPaidDate == nil {
			t.Fatal("expected fully paid date set")
		}
	})

	t.Run("flags never flip back off", func(t *testing.T) {
		existing := utils.NewDateOnly(2025, 1, 1)
		booking := model.Booking{
			TotalAmount:     dec("1000"),
			DepositPaid:     true,
			DepositPaidDate: &existing,
		}
		ApplyPaymentFlags(&booking, constants.PAYMENT_DEPOSIT, decimal.Zero, date)
		if booking.DepositPaidDate.Format("2006-01-02") != "2025-01-01" {
			t.Fatal("expected original deposit date kept")
		}
	})
}
