package helper

import (
	"testing"
	"time"
)

func TestFormatCodes(t *testing.T) {
	march := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		got      string
		expected string
	}{
		{"customer code zero padded", FormatCustomerCode(7), "CUST-00007"},
		{"customer code wide sequence", FormatCustomerCode(12345), "CUST-12345"},
		{"booking code carries year month", FormatBookingCode(march, 3), "BK-202503-0003"},
		{"quotation code carries year month", FormatQuotationCode(march, 41), "QT-202503-0041"},
		{"payment code zero padded", FormatPaymentCode(9), "PAY-000009"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, tc.got)
			}
		})
	}
}

func TestMonthlyCodesRestartAcrossMonths(t *testing.T) {
	march := time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 1, 0, 30, 0, 0, time.UTC)

	if FormatBookingCode(march, 120) == FormatBookingCode(april, 1) {
		t.Fatal("expected different codes across months")
	}
	if got := FormatBookingCode(april, 1); got != "BK-202504-0001" {
		t.Fatalf("expected BK-202504-0001, got %s", got)
	}
}
