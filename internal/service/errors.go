package service

import "errors"

// Sentinel errors mapped to HTTP responses by the handler layer.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrInvalidInput       = errors.New("invalid input")

	ErrCartEmpty          = errors.New("cart is empty")
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	ErrVariationNotFound  = errors.New("variation not found")

	ErrAddressRequired   = errors.New("please select a delivery address")
	ErrScheduleRequired  = errors.New("select at least one delivery day")
	ErrStartDateRequired = errors.New("select a start date")
	ErrInvalidSchedule   = errors.New("invalid delivery day")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
)
