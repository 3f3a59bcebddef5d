package utils

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAccountNotFound  = errors.New("account not found")

	ErrDuplicateReview  = errors.New("review already exists for this template")
	ErrPurchaseRequired = errors.New("completed purchase required")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrEmptyCart     = errors.New("cart contains no template ids")
	ErrInvalidSort   = errors.New("unrecognized sort parameter")
	ErrInvalidPrice  = errors.New("invalid price parameter")
	ErrInvalidUpload = errors.New("invalid upload")

	ErrOrderNotPayable = errors.New("order cannot be completed from its current status")

	ErrPaymentNotSucceeded = errors.New("payment not successful")
	ErrPaymentMismatch     = errors.New("payment intent does not match order")
	ErrPaymentProvider     = errors.New("payment provider error")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("insufficient permissions")

	ErrDatabaseError = errors.New("database error")
)
