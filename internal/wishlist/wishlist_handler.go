package wishlist

import (
	"net/http"

	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	response.Success(c, http.StatusOK, h.service.List(c.Request.Context(), sessionID))
}

// POST /wishlist/toggle
func (h *Handler) Toggle(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Toggle(c.Request.Context(), sessionID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// POST /wishlist/:productId/move-to-cart
func (h *Handler) MoveToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	productID := c.Param("productId")

	var req MoveToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	item, err := h.service.MoveToCart(c.Request.Context(), sessionID, productID, req.Size)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, item)
}
