package comment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/cards/:id/comments", handler.GetForCard)
	rg.POST("/cards/:id/comments", handler.CreateForCard)
	rg.PATCH("/comments/:id", handler.UpdateComment)
	rg.DELETE("/comments/:id", handler.DeleteComment)
}
