package label

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/cards/:id/labels", handler.GetForCard)
	rg.POST("/cards/:id/labels", handler.CreateForCard)
	rg.DELETE("/cards/:id/labels/:labelID", handler.DeleteFromCard)
	rg.PATCH("/labels/:id", handler.UpdateLabel)
	rg.DELETE("/labels/:id", handler.DeleteLabel)
}
