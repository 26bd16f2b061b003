package account

import "errors"

var (
	// -- Validation & Input --
	ErrMissingSession     = errors.New("session id is required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingEmail       = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email address")

	// -- Auth --
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User-facing messages shown by the auth screens.
const (
	MsgMissingCredentials = "Please fill in all fields"
	MsgMissingEmail       = "Please enter your email address"
	MsgAccountCreated     = "Account created! Please log in with your credentials"
	MsgResetSent          = "We've sent you a password reset link"
)
