package helper

import (
	"testing"

	"hall_manager/constants"
	"hall_manager/model"
	"hall_manager/utils"
)

func TestIsQuotationExpired(t *testing.T) {
	today := utils.NewDateOnly(2025, 5, 20)

	cases := []struct {
		name       string
		status     string
		validUntil utils.DateOnly
		expected   bool
	}{
		{"sent and past valid_until", constants.QUOTATION_SENT, utils.NewDateOnly(2025, 5, 19), true},
		{"sent and valid today", constants.QUOTATION_SENT, utils.NewDateOnly(2025, 5, 20), false},
		{"sent and valid tomorrow", constants.QUOTATION_SENT, utils.NewDateOnly(2025, 5, 21), false},
		{"draft past valid_until", constants.QUOTATION_DRAFT, utils.NewDateOnly(2025, 5, 1), true},
		{"accepted never expires", constants.QUOTATION_ACCEPTED, utils.NewDateOnly(2025, 5, 1), false},
		{"rejected never expires", constants.QUOTATION_REJECTED, utils.NewDateOnly(2025, 5, 1), false},
		{"already expired stays resolved", constants.QUOTATION_EXPIRED, utils.NewDateOnly(2025, 5, 1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quotation := model.Quotation{Status: tc.status, ValidUntil: tc.validUntil}
			if got := IsQuotationExpired(quotation, today); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
