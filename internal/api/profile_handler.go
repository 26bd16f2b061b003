package api

import (
	"net/http"

	"boldstore-be/internal/middleware"
	"boldstore-be/internal/profile"
	"boldstore-be/internal/response"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(s profile.Service) *ProfileHandler {
	return &ProfileHandler{service: s}
}

type avatarRequest struct {
	Avatar string `json:"avatar"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", v)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile.MsgProfileUpdated, p)
}

func (h *ProfileHandler) SetAvatar(c *gin.Context) {
	var req avatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.SetAvatar(c.Request.Context(), middleware.SessionID(c), req.Avatar); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar updated", nil)
}

func (h *ProfileHandler) RemoveAvatar(c *gin.Context) {
	if err := h.service.RemoveAvatar(c.Request.Context(), middleware.SessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar removed", nil)
}
