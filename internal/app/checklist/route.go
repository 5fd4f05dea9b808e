package checklist

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/cards/:id/checklists", handler.GetForCard)
	rg.POST("/cards/:id/checklists", handler.CreateForCard)
	rg.DELETE("/checklists/:id", handler.DeleteChecklist)
	rg.POST("/checklists/:id/items", handler.CreateItem)
	rg.PATCH("/checklist-items/:id", handler.UpdateItem)
	rg.PATCH("/checklist-items/:id/toggle", handler.ToggleItem)
	rg.DELETE("/checklist-items/:id", handler.DeleteItem)
}
