package api

import (
	"net/http"

	"boldstore-be/internal/filter"
	"boldstore-be/internal/middleware"
	"boldstore-be/internal/response"
	"boldstore-be/internal/search"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	service search.Service
}

func NewSearchHandler(s search.Service) *SearchHandler {
	return &SearchHandler{service: s}
}

func (h *SearchHandler) Search(c *gin.Context) {
	spec, err := filter.FromQuery(c.Request.URL.Query())
	if err != nil {
		writeError(c, err)
		return
	}

	query := c.Query("q")
	results, err := h.service.Search(c.Request.Context(), middleware.SessionID(c), query, spec)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"query":   query,
		"results": toProductList(results, spec),
	})
}

func (h *SearchHandler) Recent(c *gin.Context) {
	recent, err := h.service.Recent(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if recent == nil {
		recent = []string{}
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"recent":   recent,
		"trending": h.service.Trending(),
	})
}

func (h *SearchHandler) ClearRecent(c *gin.Context) {
	if err := h.service.ClearRecent(c.Request.Context(), middleware.SessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Recent searches cleared", nil)
}
