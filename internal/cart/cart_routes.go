package cart

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Detail)
		cart.GET("/count", h.Count)
		cart.DELETE("", h.Clear)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:itemId", h.UpdateQty)
		cart.DELETE("/items/:itemId", h.RemoveItem)
	}
}
