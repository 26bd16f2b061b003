package auth

import (
	"net/http"
	"strings"
)

// SessionCookie is the cookie the session token is issued in.
const SessionCookie = "session_token"

// ExtractSessionToken reads the session token from the cookie, falling back
// to an Authorization bearer header.
func ExtractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return ""
}
