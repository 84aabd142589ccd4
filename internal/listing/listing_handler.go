package listing

import (
	"net/http"

	"go-storefront/internal/catalog"
	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"
	"go-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	catalog catalog.Service
}

func NewHandler(svc Service, cat catalog.Service) *Handler {
	return &Handler{service: svc, catalog: cat}
}

// GET /products
// GET /products/:category?search=
func (h *Handler) List(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	category := c.Param("category")
	query := c.Query("search")

	products := h.service.View(c.Request.Context(), sessionID, category, query)
	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GET /product/:id
func (h *Handler) Detail(c *gin.Context) {
	product, err := h.catalog.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// GET /filters
func (h *Handler) Filters(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	response.Success(c, http.StatusOK, h.service.Filters(c.Request.Context(), sessionID))
}

// PUT /filters
func (h *Handler) SetFilters(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var f session.FilterConfig
	if err := c.ShouldBindJSON(&f); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid filter config", err.Error())
		return
	}

	response.Success(c, http.StatusOK, h.service.SetFilters(c.Request.Context(), sessionID, f))
}

// DELETE /filters
func (h *Handler) ResetFilters(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	response.Success(c, http.StatusOK, h.service.ResetFilters(c.Request.Context(), sessionID))
}
