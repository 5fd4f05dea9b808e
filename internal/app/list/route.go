package list

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/lists", handler.GetLists)
	rg.POST("/lists", handler.CreateList)
	rg.PATCH("/lists/:id", handler.UpdateList)
	rg.DELETE("/lists/:id", handler.DeleteList)
}
