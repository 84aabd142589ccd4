package listing

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/products", h.List)
	rg.GET("/products/:category", h.List)
	rg.GET("/product/:id", h.Detail)

	filters := rg.Group("/filters")
	{
		filters.GET("", h.Filters)
		filters.PUT("", h.SetFilters)
		filters.DELETE("", h.ResetFilters)
	}
}
