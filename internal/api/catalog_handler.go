package api

import (
	"net/http"

	"boldstore-be/internal/catalog"
	"boldstore-be/internal/filter"
	"boldstore-be/internal/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.Service
}

func NewCatalogHandler(s catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// Home returns everything the home screen shows.
func (h *CatalogHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	banners, err := h.service.ListBanners(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	featured, err := h.service.Featured(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"banners":    banners,
		"categories": categories,
		"featured":   featured,
	})
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", categories)
}

// CategoryProducts lists a category's products narrowed by the filter query.
func (h *CatalogHandler) CategoryProducts(c *gin.Context) {
	spec, err := filter.FromQuery(c.Request.URL.Query())
	if err != nil {
		writeError(c, err)
		return
	}

	category, products, err := h.service.ProductsByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"category": category,
		"results":  toProductList(filter.Apply(products, spec), spec),
	})
}

func (h *CatalogHandler) Product(c *gin.Context) {
	p, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", p)
}

// Filters describes the filter drawer: its options and defaults.
func (h *CatalogHandler) Filters(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{
		"brands":      filter.Brands,
		"sortOptions": filter.SortOptions,
		"defaults":    filter.Default(),
	})
}
