package domain

import "errors"

// Sentinel errors for every failure the order operations can surface.
// Callers branch with errors.Is; the HTTP layer maps them onto the uniform
// {success:false, error} result shape.
var (
	ErrBusinessUnitNotFound = errors.New("business unit not found")
	ErrTableNotFound        = errors.New("table not found or not active")
	ErrNoItems              = errors.New("at least one item is required")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrMenuItemUnavailable  = errors.New("menu item not found or unavailable")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotModifiable   = errors.New("order not found or cannot be modified")
	ErrOrderNotCancellable  = errors.New("order cannot be cancelled in its current state")
	ErrOrderNotRoutable     = errors.New("order cannot be sent to kitchen/bar in its current state")

	// ErrOrderNumberConflict is returned by the repository when an insert
	// hits the unique index on order_number. It is the only retried error.
	ErrOrderNumberConflict = errors.New("order number already in use")

	// ErrOrderNumberExhausted is surfaced after the retry budget is spent.
	ErrOrderNumberExhausted = errors.New("failed to generate unique order number after multiple attempts")

	// ErrMalformedOrderNumber means the latest stored order number for a
	// business unit has a non-numeric sequence suffix. Incrementing past it
	// could reissue taken numbers, so this is a hard error.
	ErrMalformedOrderNumber = errors.New("existing order number has a malformed sequence suffix")
)
