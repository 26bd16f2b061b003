package profile

import "errors"

var (
	ErrMissingSession = errors.New("session id is required")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidAvatar  = errors.New("avatar must be a base64 image data URI")
	ErrAvatarTooLarge = errors.New("avatar image must be less than 5MB")
)

const (
	MsgProfileUpdated = "Your profile has been updated successfully"
	MsgAvatarTooLarge = "Avatar image must be less than 5MB"
)
