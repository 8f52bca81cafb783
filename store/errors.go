package store

import "errors"

// Errors returned by the order store. Transition rejections carry
// statemachine.ErrInvalidTransition instead.
var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownTable    = errors.New("unknown table")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrOrderNotFound   = errors.New("order not found")
)
