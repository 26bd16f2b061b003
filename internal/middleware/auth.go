package middleware

import (
	"context"
	"errors"
	"net/http"

	"boldstore-be/internal/account"
	"boldstore-be/internal/auth"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionIDKey is the gin context key holding the validated session id.
const SessionIDKey = "session_id"

// AuthChecker reports whether a session has logged in.
type AuthChecker interface {
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
}

// SessionMiddleware rejects requests without a valid session token and
// exposes the session id to handlers and loggers.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractSessionToken(c.Request)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session token is required", nil)
			c.Abort()
			return
		}

		claims, err := account.ParseSession(tokenString)
		if err != nil {
			code, msg := "INVALID_TOKEN", "Invalid session token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				code, msg = "TOKEN_EXPIRED", "Session has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, msg, nil)
			c.Abort()
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Request = c.Request.WithContext(logger.WithSessionID(c.Request.Context(), claims.SessionID))

		c.Next()
	}
}

// RequireLogin lets a request through only when its session is logged in.
// It must run after SessionMiddleware.
func RequireLogin(checker AuthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := checker.IsAuthenticated(c.Request.Context(), SessionID(c))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read session", nil)
			c.Abort()
			return
		}
		if !ok {
			response.Error(c, http.StatusUnauthorized, "LOGIN_REQUIRED", "Please log in to continue", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
