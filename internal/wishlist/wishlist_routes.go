package wishlist

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	wl := rg.Group("/wishlist")
	{
		wl.GET("", h.List)
		wl.POST("/toggle", h.Toggle)
		wl.POST("/:productId/move-to-cart", h.MoveToCart)
	}
}
