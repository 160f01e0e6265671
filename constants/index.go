package constants

// Account roles
const (
	ROLE_ADMIN = "admin"
	ROLE_STAFF = "staff"
)

// Customer tiers
const (
	CUSTOMER_INTERNAL = "internal"
	CUSTOMER_EXTERNAL = "external"
)

// Time slots
const (
	SLOT_MORNING = "morning"
	SLOT_EVENING = "evening"
)

var TimeSlots = []string{SLOT_MORNING, SLOT_EVENING}

// Booking types
const (
	BOOKING_STANDARD    = "standard"
	BOOKING_WITH_DINNER = "with_dinner"
)

var BookingTypes = []string{BOOKING_STANDARD, BOOKING_WITH_DINNER}

// Booking statuses
const (
	BOOKING_PENDING   = "pending"
	BOOKING_CONFIRMED = "confirmed"
	BOOKING_CANCELLED = "cancelled"
	BOOKING_COMPLETED = "completed"
)

var BookingStatuses = []string{BOOKING_PENDING, BOOKING_CONFIRMED, BOOKING_CANCELLED, BOOKING_COMPLETED}

// Quotation statuses
const (
	QUOTATION_DRAFT    = "draft"
	QUOTATION_SENT     = "sent"
	QUOTATION_ACCEPTED = "accepted"
	QUOTATION_REJECTED = "rejected"
	QUOTATION_EXPIRED  = "expired"
)

// Payment types
const (
	PAYMENT_DEPOSIT = "deposit"
	PAYMENT_PARTIAL = "partial"
	PAYMENT_FULL    = "full"
)

var PaymentTypes = []string{PAYMENT_DEPOSIT, PAYMENT_PARTIAL, PAYMENT_FULL}

// Billing item categories
const (
	CATEGORY_HALL      = "hall"
	CATEGORY_EQUIPMENT = "equipment"
	CATEGORY_FURNITURE = "furniture"
	CATEGORY_SERVICE   = "service"
	CATEGORY_OTHER     = "other"
)

var BillingItemCategories = []string{CATEGORY_HALL, CATEGORY_EQUIPMENT, CATEGORY_FURNITURE, CATEGORY_SERVICE, CATEGORY_OTHER}

// Catering vendor types
const (
	VENDOR_VEGETARIAN     = "vegetarian"
	VENDOR_NON_VEGETARIAN = "non_vegetarian"
)

// System setting keys
const (
	SETTING_DEFAULT_TAX_PERCENTAGE     = "default_tax_percentage"
	SETTING_DEFAULT_DEPOSIT_PERCENTAGE = "default_deposit_percentage"
	SETTING_MINIMUM_DINNER_TABLES      = "minimum_dinner_tables"
)

// Default minimum table count when a dinner package does not set one.
const DEFAULT_MINIMUM_TABLES = 50

// Response messages
const (
	ERROR_INTERNAL_ERROR       = "Something went wrong, please try again later"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read parsed request data"
	ERROR_INVALID_INPUT        = "Invalid input"
	ERROR_NOT_FOUND            = "Resource not found"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_CREDENTIALS        = "Invalid email or password"
	ACCOUNT_NOT_ACTIVE         = "Account has been deactivated"
	DATA_INPUT_IS_NOT_NUMBER   = "Route parameter must be a number"

	HALL_NOT_AVAILABLE     = "Hall is already booked for this date and time slot"
	HALL_IN_USE            = "Hall has bookings and cannot be deleted, deactivate it instead"
	BILLING_ITEM_IN_USE    = "Billing item is referenced by bookings or quotations and cannot be deleted, deactivate it instead"
	DINNER_PACKAGE_IN_USE  = "Dinner package is referenced by bookings and cannot be deleted, deactivate it instead"
	VENDOR_IN_USE          = "Catering vendor is referenced by bookings and cannot be deleted"
	CUSTOMER_IN_USE        = "Customer has bookings or quotations and cannot be deleted, deactivate instead"
	QUOTATION_EXPIRED_MSG  = "Quotation is no longer valid"
	QUOTATION_BAD_STATE    = "Quotation cannot be accepted in its current state"
	INVALID_STATUS_CHANGE  = "Status transition is not allowed"
	BOOKING_ALREADY_CLOSED = "Booking is completed or cancelled and cannot be modified"
)
