package attachment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/cards/:id/attachments", handler.GetForCard)
	rg.POST("/cards/:id/attachments", handler.UploadForCard)
	rg.DELETE("/attachments/:id", handler.DeleteAttachment)
}
