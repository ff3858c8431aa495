package service

import "errors"

// Errors returned by the services. Handlers map these onto HTTP statuses;
// anything unlisted is a storage failure.
var (
	ErrNameRequired    = errors.New("customerName is required")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrWilayaRequired  = errors.New("wilaya is required")
	ErrCommuneRequired = errors.New("commune is required")
	ErrEmptyOrder      = errors.New("order has no products")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrSizeRequired    = errors.New("size is required for this product")
	ErrOutOfStock      = errors.New("insufficient stock")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrStatusConflict  = errors.New("illegal status transition")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidStock    = errors.New("stock must not be negative")
	ErrInvalidIndex    = errors.New("index out of range")
)

// IsValidationError reports whether the error should map to 400.
// ErrProductNotFound and ErrOrderNotFound are deliberately not listed:
// an unknown id on a lookup is 404, and order placement decides its own
// status for lines referencing missing products.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrWilayaRequired) ||
		errors.Is(err, ErrCommuneRequired) ||
		errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrSizeRequired) ||
		errors.Is(err, ErrOutOfStock) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidStock) ||
		errors.Is(err, ErrInvalidIndex)
}
