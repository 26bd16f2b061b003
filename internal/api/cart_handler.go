package api

import (
	"net/http"

	"boldstore-be/internal/cart"
	"boldstore-be/internal/middleware"
	"boldstore-be/internal/response"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service cart.Service
}

func NewCartHandler(s cart.Service) *CartHandler {
	return &CartHandler{service: s}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type updateQtyRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *CartHandler) respond(c *gin.Context, status int, message string, s cart.Summary, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, status, message, toCartResponse(s))
}

func (h *CartHandler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, http.StatusOK, "", s, err)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	s, err := h.service.AddItem(c.Request.Context(), middleware.SessionID(c), req.ProductID, quantity)
	h.respond(c, http.StatusCreated, "Added to cart", s, err)
}

func (h *CartHandler) UpdateQty(c *gin.Context) {
	var req updateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Quantity == nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "quantity is required", nil)
		return
	}

	s, err := h.service.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("productId"), *req.Quantity)
	h.respond(c, http.StatusOK, "", s, err)
}

func (h *CartHandler) Increment(c *gin.Context) {
	s, err := h.service.Increment(c.Request.Context(), middleware.SessionID(c), c.Param("productId"))
	h.respond(c, http.StatusOK, "", s, err)
}

func (h *CartHandler) Decrement(c *gin.Context) {
	s, err := h.service.Decrement(c.Request.Context(), middleware.SessionID(c), c.Param("productId"))
	h.respond(c, http.StatusOK, "", s, err)
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	s, err := h.service.RemoveItem(c.Request.Context(), middleware.SessionID(c), c.Param("productId"))
	h.respond(c, http.StatusOK, "Removed from cart", s, err)
}

func (h *CartHandler) Clear(c *gin.Context) {
	s, err := h.service.Clear(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, http.StatusOK, "Cart cleared", s, err)
}
