package errs

import "errors"

// Shared domain error taxonomy. Usecases mark lower-level failures with these
// sentinels; handlers translate them into envelope responses.
var (
	// Account errors
	ErrDuplicateIdentity = errors.New("an account with this email already exists")
	ErrWeakPassword      = errors.New("password does not meet the strength policy")
	ErrMissingTarget     = errors.New("target record reference is required")

	// Reservation errors
	ErrInvalidDateRange     = errors.New("check-out must be after check-in")
	ErrUnapplicableDiscount = errors.New("the discount could not be applied")

	// Discount errors
	ErrInvalidDiscountShape = errors.New("exactly one of rate or flat amount must be positive")

	// Catalog errors
	ErrMissingIdentifier = errors.New("a room requires a name or a number")

	// Generic errors
	ErrNotFound = errors.New("record not found")
)
