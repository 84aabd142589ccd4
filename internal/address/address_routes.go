package address

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	addresses := rg.Group("/addresses")
	{
		addresses.GET("", h.List)
		addresses.POST("", h.Create)
		addresses.DELETE("/:index", h.Delete)
	}
}
