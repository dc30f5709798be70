package services

import "errors"

// Validation errors are resolved before any storage round trip.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidDiscount   = errors.New("discount rate must be between 0 and 100")
	ErrMenuUnavailable   = errors.New("menu is not available")
	ErrCheckoutInFlight  = errors.New("checkout already in progress")
	ErrCommitFailed      = errors.New("commit transaction failed")
	ErrStockInsufficient = errors.New("stock is not enough")
)
