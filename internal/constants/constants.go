package constants

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Weekday codes accepted by the recurring-delivery schedule. "thurs" is the
// legacy spelling the existing clients send; it is kept as-is.
var ScheduleWeekdays = []string{"mon", "tue", "wed", "thurs", "fri", "sat", "sun"}

// Cart quantity bounds enforced by the quantity-selection control.
const (
	CartQuantityMin = 1
	CartQuantityMax = 10
)

// Static page slugs seeded by default.
const (
	PageSlugAbout        = "about"
	PageSlugTerms        = "terms"
	PageSlugPrivacy      = "privacy"
	PageSlugCancellation = "cancellation-policy"
	PageSlugUserDeletion = "user-deletion-policy"
)

// Queue names
const (
	QueueDefault = "default"
)

// Task type names
const (
	TaskOrderConfirmation  = "order:confirmation"
	TaskRecurringDispatch  = "order:recurring_dispatch"
	TaskRecurringDailyScan = "order:recurring_daily_scan"
)

// Home payload sizing, matching what the storefront renders above the fold.
const (
	HomeFeaturedProductLimit = 8
	HomeCategoryLimit        = 4
	HomeSliderLimit          = 10
)
