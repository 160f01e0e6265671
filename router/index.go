package router

import (
	"hall_manager/handler"
	"hall_manager/middleware"
	"hall_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/hall-booking/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", middleware.Protected(), handler.Logout)
	auth.Post("/logout-all", middleware.Protected(), handler.LogoutAll)
	auth.Get("/me", middleware.Protected(), handler.Me)

	account := v1.Group("/accounts", logger.New())
	account.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetAccounts)
	account.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateAccount(), handler.CreateAccount)
	account.Put("/:accountId", middleware.Protected(), middleware.AdminOnly(), validate.EditAccount("accountId"), handler.EditAccount)
	account.Patch("/:accountId/active", middleware.Protected(), middleware.AdminOnly(), validate.Active("accountId"), handler.ActiveAccount)

	hall := v1.Group("/halls", logger.New())
	hall.Get("/", middleware.Protected(), handler.GetHalls)
	hall.Get("/availability", middleware.Protected(), validate.Availability(), handler.CheckAvailability)
	hall.Get("/:hallId", middleware.Protected(), validate.GetById("hallId"), handler.GetHallById)
	hall.Get("/:hallId/calendar", middleware.Protected(), validate.GetById("hallId"), handler.GetHallCalendar)
	hall.Post("/", middleware.Protected(), validate.CreateHall(), handler.CreateHall)
	hall.Put("/:hallId", middleware.Protected(), validate.EditHall("hallId"), handler.EditHall)
	hall.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteHall)
	hall.Patch("/:hallId/active", middleware.Protected(), validate.Active("hallId"), handler.ActiveHall)

	customer := v1.Group("/customers", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", middleware.Protected(), validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), validate.EditCustomer("customerId"), handler.EditCustomer)
	customer.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCustomer)
	customer.Patch("/:customerId/active", middleware.Protected(), validate.Active("customerId"), handler.ActiveCustomer)

	billingItem := v1.Group("/billing-items", logger.New())
	billingItem.Get("/", middleware.Protected(), handler.GetBillingItems)
	billingItem.Get("/:itemId", middleware.Protected(), validate.GetById("itemId"), handler.GetBillingItemById)
	billingItem.Post("/", middleware.Protected(), validate.CreateBillingItem(), handler.CreateBillingItem)
	billingItem.Put("/:itemId", middleware.Protected(), validate.EditBillingItem("itemId"), handler.EditBillingItem)
	billingItem.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteBillingItem)
	billingItem.Patch("/:itemId/active", middleware.Protected(), validate.Active("itemId"), handler.ActiveBillingItem)

	dinnerPackage := v1.Group("/dinner-packages", logger.New())
	dinnerPackage.Get("/", middleware.Protected(), handler.GetDinnerPackages)
	dinnerPackage.Get("/:packageId", middleware.Protected(), validate.GetById("packageId"), handler.GetDinnerPackageById)
	dinnerPackage.Post("/", middleware.Protected(), validate.CreateDinnerPackage(), handler.CreateDinnerPackage)
	dinnerPackage.Put("/:packageId", middleware.Protected(), validate.EditDinnerPackage("packageId"), handler.EditDinnerPackage)
	dinnerPackage.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteDinnerPackage)
	dinnerPackage.Patch("/:packageId/active", middleware.Protected(), validate.Active("packageId"), handler.ActiveDinnerPackage)

	vendor := v1.Group("/catering-vendors", logger.New())
	vendor.Get("/", middleware.Protected(), handler.GetCateringVendors)
	vendor.Get("/:vendorId", middleware.Protected(), validate.GetById("vendorId"), handler.GetCateringVendorById)
	vendor.Post("/", middleware.Protected(), validate.CreateCateringVendor(), handler.CreateCateringVendor)
	vendor.Put("/:vendorId", middleware.Protected(), validate.EditCateringVendor("vendorId"), handler.EditCateringVendor)
	vendor.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCateringVendor)
	vendor.Patch("/:vendorId/active", middleware.Protected(), validate.Active("vendorId"), handler.ActiveCateringVendor)

	booking := v1.Group("/bookings", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/qr", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingQR)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Put("/:bookingId", middleware.Protected(), validate.EditBooking("bookingId"), handler.EditBooking)
	booking.Patch("/:bookingId/status", middleware.Protected(), validate.UpdateBookingStatus("bookingId"), handler.UpdateBookingStatus)

	quotation := v1.Group("/quotations", logger.New())
	quotation.Get("/", middleware.Protected(), handler.GetQuotations)
	quotation.Get("/:quotationId", middleware.Protected(), validate.GetById("quotationId"), handler.GetQuotationById)
	quotation.Post("/", middleware.Protected(), validate.CreateQuotation(), handler.CreateQuotation)
	quotation.Put("/:quotationId", middleware.Protected(), validate.EditQuotation("quotationId"), handler.EditQuotation)
	quotation.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteQuotation)
	quotation.Post("/:quotationId/send", middleware.Protected(), validate.GetById("quotationId"), handler.SendQuotation)
	quotation.Post("/:quotationId/accept", middleware.Protected(), validate.GetById("quotationId"), handler.AcceptQuotation)
	quotation.Post("/:quotationId/reject", middleware.Protected(), validate.GetById("quotationId"), handler.RejectQuotation)

	payment := v1.Group("/payments", logger.New())
	payment.Get("/", middleware.Protected(), handler.GetPayments)
	payment.Get("/:paymentId", middleware.Protected(), validate.GetById("paymentId"), handler.GetPaymentById)
	payment.Post("/", middleware.Protected(), validate.CreatePayment(), handler.CreatePayment)

	setting := v1.Group("/settings", logger.New())
	setting.Get("/", middleware.Protected(), handler.GetSettings)
	setting.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.UpsertSetting(), handler.UpsertSetting)

	report := v1.Group("/reports", logger.New())
	report.Get("/dashboard", middleware.Protected(), handler.GetDashboard)
}
