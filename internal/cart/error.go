package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingSession = errors.New("session id is required")
	ErrMissingProduct = errors.New("product id is required")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is empty")
)
