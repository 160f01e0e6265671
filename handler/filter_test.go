package handler

import (
	"net/http/httptest"
	"testing"

	"hall_manager/model"

	"github.com/gofiber/fiber/v2"
)

func parseFilter(t *testing.T, target string, out any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if err := c.QueryParser(out); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestBookingFilterQueryParsing(t *testing.T) {
	var filter model.FilterBooking
	parseFilter(t, "/?searchKey=BK-2025&hallId=7&customerId=3&status=pending&timeSlot=morning&dateFrom=2025-06-01&dateTo=2025-06-30&limit=20&page=2", &filter)

	if filter.SearchKey != "BK-2025" {
		t.Fatalf("searchKey: got %q", filter.SearchKey)
	}
	if filter.HallID == nil || *filter.HallID != 7 {
		t.Fatalf("hallId: got %v", filter.HallID)
	}
	if filter.CustomerID == nil || *filter.CustomerID != 3 {
		t.Fatalf("customerId: got %v", filter.CustomerID)
	}
	if filter.Status != "pending" || filter.TimeSlot != "morning" {
		t.Fatalf("status/timeSlot: got %q %q", filter.Status, filter.TimeSlot)
	}
	if filter.DateFrom != "2025-06-01" || filter.DateTo != "2025-06-30" {
		t.Fatalf("date range: got %q %q", filter.DateFrom, filter.DateTo)
	}
	if filter.Limit == nil || *filter.Limit != 20 || filter.Page == nil || *filter.Page != 2 {
		t.Fatalf("pagination: got %v %v", filter.Limit, filter.Page)
	}
}

func TestHallFilterQueryParsing(t *testing.T) {
	var filter model.FilterHall
	parseFilter(t, "/?searchKey=grand&active=true", &filter)

	if filter.SearchKey != "grand" {
		t.Fatalf("searchKey: got %q", filter.SearchKey)
	}
	if filter.Active == nil || !*filter.Active {
		t.Fatalf("active: got %v", filter.Active)
	}
}

func TestHallFilterDefaults(t *testing.T) {
	var filter model.FilterHall
	parseFilter(t, "/", &filter)

	if filter.SearchKey != "" || filter.Active != nil || filter.Limit != nil || filter.Page != nil {
		t.Fatalf("expected empty filter, got %+v", filter)
	}
}

func TestPaymentFilterQueryParsing(t *testing.T) {
	var filter model.FilterPayment
	parseFilter(t, "/?bookingId=12&paymentType=deposit", &filter)

	if filter.BookingID == nil || *filter.BookingID != 12 {
		t.Fatalf("bookingId: got %v", filter.BookingID)
	}
	if filter.PaymentType != "deposit" {
		t.Fatalf("paymentType: got %q", filter.PaymentType)
	}
}
