package store

import "errors"

// Failure vocabulary for store operations. ErrInvalidQuantity and
// ErrUnauthorized belong to the HTTP edge (request validation and the
// session gate); the store itself treats non-positive cart quantities as
// removals and performs no authorization.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrUnauthorized    = errors.New("admin session required")
)
