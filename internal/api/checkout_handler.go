package api

import (
	"net/http"

	"boldstore-be/internal/checkout"
	"boldstore-be/internal/middleware"
	"boldstore-be/internal/response"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service checkout.Service
}

func NewCheckoutHandler(s checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

func (h *CheckoutHandler) respond(c *gin.Context, message string, v checkout.View, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, toCheckoutResponse(v))
}

func (h *CheckoutHandler) State(c *gin.Context) {
	v, err := h.service.State(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, "", v, err)
}

func (h *CheckoutHandler) SubmitAddress(c *gin.Context) {
	var req checkout.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	v, err := h.service.SubmitAddress(c.Request.Context(), middleware.SessionID(c), req)
	h.respond(c, "", v, err)
}

func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req checkout.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	v, err := h.service.SubmitPayment(c.Request.Context(), middleware.SessionID(c), req)
	h.respond(c, checkout.MsgOrderConfirmed, v, err)
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	v, err := h.service.Back(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, "", v, err)
}

func (h *CheckoutHandler) Complete(c *gin.Context) {
	order, err := h.service.Complete(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Thank you for shopping with us", toOrderResponse(order))
}
