package profile

const (
	ProfileKey = "userProfile"
	AvatarKey  = "userAvatar"

	// MaxAvatarBytes caps the decoded avatar image.
	MaxAvatarBytes = 5 * 1024 * 1024
)

type Profile struct {
	FullName string `json:"fullName" validate:"min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// View is what the profile screen renders.
type View struct {
	Profile Profile `json:"profile"`
	Avatar  string  `json:"avatar,omitempty"`
}
