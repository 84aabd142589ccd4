package cart

import (
	"net/http"

	"go-storefront/internal/catalog"
	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// clothing categories require a size before an item enters the cart
var sizedCategories = map[string]struct{}{
	"men":   {},
	"women": {},
	"kids":  {},
}

type Handler struct {
	service Service
	catalog catalog.Service
	logger  *zap.Logger
}

func NewHandler(svc Service, cat catalog.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{service: svc, catalog: cat, logger: l}
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("add item validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if product, ok := h.catalog.Lookup(req.ProductID); ok {
		if _, sized := sizedCategories[product.Category]; sized && req.Size == "" {
			httpErr := apperror.ToHTTP(ErrSizeRequired)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
	}

	item, err := h.service.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// PATCH /cart/items/:itemId
func (h *Handler) UpdateQty(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	itemID := c.Param("itemId")

	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	h.service.UpdateQty(c.Request.Context(), sessionID, itemID, req.Quantity)
	response.Success(c, http.StatusOK, h.service.Detail(c.Request.Context(), sessionID))
}

// DELETE /cart/items/:itemId
func (h *Handler) RemoveItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	h.service.RemoveItem(c.Request.Context(), sessionID, c.Param("itemId"))
	response.Success(c, http.StatusOK, h.service.Detail(c.Request.Context(), sessionID))
}

// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	response.Success(c, http.StatusOK, h.service.Detail(c.Request.Context(), sessionID))
}

// GET /cart/count
func (h *Handler) Count(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	response.Success(c, http.StatusOK, CountResponse{Count: h.service.Count(c.Request.Context(), sessionID)})
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	h.service.Clear(c.Request.Context(), sessionID)
	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"})
}
