package address

import (
	"net/http"
	"strconv"

	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /addresses
func (ctrl *Handler) List(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	response.Success(c, http.StatusOK, ctrl.service.List(c.Request.Context(), sessionID))
}

// POST /addresses
func (ctrl *Handler) Create(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := ctrl.service.Create(c.Request.Context(), sessionID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// DELETE /addresses/:index
func (ctrl *Handler) Delete(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid address position", nil)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), sessionID, index); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Address removed"})
}
