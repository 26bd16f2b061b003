package api

import (
	"net/http"

	"boldstore-be/internal/middleware"
	"boldstore-be/internal/response"
	"boldstore-be/internal/wishlist"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	service wishlist.Service
}

func NewWishlistHandler(s wishlist.Service) *WishlistHandler {
	return &WishlistHandler{service: s}
}

func (h *WishlistHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	message := ""
	if len(products) == 0 {
		message = wishlist.MsgEmpty
	}
	response.Success(c, http.StatusOK, message, products)
}

func (h *WishlistHandler) Toggle(c *gin.Context) {
	productID := c.Param("productId")
	added, err := h.service.Toggle(c.Request.Context(), middleware.SessionID(c), productID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"productId": productID, "wishlisted": added})
}
