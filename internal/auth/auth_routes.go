package auth

import (
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	grp := rg.Group("/auth")
	{
		grp.POST("/login", h.Login)

		authenticated := grp.Group("/")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.GET("/me", h.Me)
			authenticated.POST("/logout", h.Logout)
		}
	}
}
