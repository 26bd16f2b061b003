package api

import (
	"net/http"

	"boldstore-be/internal/account"
	"boldstore-be/internal/auth"
	"boldstore-be/internal/middleware"
	"boldstore-be/internal/response"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(s account.Service) *AccountHandler {
	return &AccountHandler{service: s}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

// StartSession issues a new session token, both in the body and as an
// http-only cookie.
func (h *AccountHandler) StartSession(c *gin.Context) {
	token, sessionID, err := h.service.StartSession(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, int(account.SessionTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusCreated, "Session started", gin.H{
		"token":     token,
		"sessionId": sessionID,
		"expiresIn": int(account.SessionTTL.Seconds()),
	})
}

func (h *AccountHandler) Landing(c *gin.Context) {
	route, err := h.service.Landing(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"route": route})
}

func (h *AccountHandler) Onboarding(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.service.OnboardingSlides())
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, account.MsgAccountCreated, nil)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Login(c.Request.Context(), middleware.SessionID(c), req.Email, req.Password); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Welcome back", gin.H{"authenticated": true})
}

func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "You have been logged out successfully", gin.H{"authenticated": false})
}

func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, account.MsgResetSent, nil)
}
