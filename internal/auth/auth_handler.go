package auth

import (
	"net/http"
	"time"

	"go-storefront/internal/middleware"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(s *Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "A valid email is required", err.Error())
		return
	}

	sessionID := middleware.SessionID(c)
	token, res, err := h.service.Login(c.Request.Context(), sessionID, req.Email)
	if err != nil {
		h.logger.Warn("login failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	c.SetCookie("access_token", token, int((30*24*time.Hour)/time.Second), "/", "", false, true)
	response.Success(c, http.StatusOK, res)
}

// POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	h.service.Logout(c.Request.Context(), sessionID)
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	user := h.service.CurrentUser(c.Request.Context(), sessionID)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Not logged in", nil)
		return
	}
	response.Success(c, http.StatusOK, AuthResponse{Email: user.Email})
}
