package checkout

import "errors"

var (
	ErrMissingSession = errors.New("session id is required")
	ErrInvalidStep    = errors.New("action not allowed at the current checkout step")
	ErrInvalidAddress = errors.New("invalid shipping address")
	ErrInvalidPayment = errors.New("invalid payment details")
)

const (
	MsgOrderConfirmed = "Your order has been placed successfully"
	MsgEmptyCart      = "Your cart is empty"
)
