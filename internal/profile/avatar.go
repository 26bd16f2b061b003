package profile

import (
	"encoding/base64"
	"strings"
)

// checkAvatar accepts data:image/<type>;base64,<payload> whose decoded size
// is at most MaxAvatarBytes.
func checkAvatar(uri string) error {
	const prefix = "data:image/"

	if !strings.HasPrefix(uri, prefix) {
		return ErrInvalidAvatar
	}
	meta, payload, ok := strings.Cut(uri[len(prefix):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") || meta == ";base64" || payload == "" {
		return ErrInvalidAvatar
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxAvatarBytes+2 {
		return ErrAvatarTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ErrInvalidAvatar
	}
	if len(raw) > MaxAvatarBytes {
		return ErrAvatarTooLarge
	}
	return nil
}
