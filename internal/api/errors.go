package api

import (
	"errors"
	"net/http"

	"boldstore-be/internal/account"
	"boldstore-be/internal/cart"
	"boldstore-be/internal/catalog"
	"boldstore-be/internal/checkout"
	"boldstore-be/internal/filter"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/profile"
	"boldstore-be/internal/response"
	"boldstore-be/internal/search"
	"boldstore-be/internal/validation"
	"boldstore-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	// -- Not found --
	{catalog.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND", catalog.MsgProductNotFound},
	{catalog.ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_NOT_FOUND", catalog.MsgCategoryNotFound},

	// -- Session --
	{cart.ErrMissingSession, http.StatusUnauthorized, "UNAUTHORIZED", "Session is required"},
	{search.ErrMissingSession, http.StatusUnauthorized, "UNAUTHORIZED", "Session is required"},
	{account.ErrMissingSession, http.StatusUnauthorized, "UNAUTHORIZED", "Session is required"},
	{profile.ErrMissingSession, http.StatusUnauthorized, "UNAUTHORIZED", "Session is required"},
	{wishlist.ErrMissingSession, http.StatusUnauthorized, "UNAUTHORIZED", "Session is required"},
	{checkout.ErrMissingSession, http.StatusUnauthorized, "UNAUTHORIZED", "Session is required"},

	// -- Auth --
	{account.ErrMissingCredentials, http.StatusBadRequest, "MISSING_CREDENTIALS", account.MsgMissingCredentials},
	{account.ErrMissingEmail, http.StatusBadRequest, "MISSING_EMAIL", account.MsgMissingEmail},
	{account.ErrInvalidEmail, http.StatusBadRequest, "INVALID_EMAIL", "Invalid email address"},
	{account.ErrEmailExists, http.StatusConflict, "EMAIL_EXISTS", "An account with this email already exists"},
	{account.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"},

	// -- Input --
	{filter.ErrInvalidQuery, http.StatusBadRequest, "INVALID_FILTER", "Invalid filter parameters"},
	{cart.ErrMissingProduct, http.StatusBadRequest, "INVALID_INPUT", "Product id is required"},
	{profile.ErrInvalidProfile, http.StatusBadRequest, "VALIDATION_ERROR", "Please correct the highlighted fields"},
	{profile.ErrInvalidAvatar, http.StatusBadRequest, "INVALID_AVATAR", "Avatar must be an image"},
	{profile.ErrAvatarTooLarge, http.StatusRequestEntityTooLarge, "AVATAR_TOO_LARGE", profile.MsgAvatarTooLarge},
	{checkout.ErrInvalidAddress, http.StatusBadRequest, "VALIDATION_ERROR", "Please correct the highlighted fields"},
	{checkout.ErrInvalidPayment, http.StatusBadRequest, "VALIDATION_ERROR", "Please correct the highlighted fields"},

	// -- State --
	{cart.ErrCartEmpty, http.StatusConflict, "CART_EMPTY", checkout.MsgEmptyCart},
	{checkout.ErrInvalidStep, http.StatusConflict, "INVALID_STEP", "This checkout step is not available"},
}

// writeError maps a service error to its HTTP status and envelope. Unknown
// errors are logged and reported as 500 without leaking their text.
func writeError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			var details interface{}
			if d := validation.Details(err); d != nil {
				details = d
			}
			response.Error(c, m.status, m.code, m.message, details)
			return
		}
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error",
		zap.String("layer", "handler"),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong", nil)
}

func badRequest(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
}
