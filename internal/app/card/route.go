package card

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/cards", handler.GetCards)
	rg.POST("/cards", handler.CreateCard)
	rg.GET("/cards/:id", handler.GetCard)
	rg.PATCH("/cards/:id", handler.UpdateCard)
	rg.DELETE("/cards/:id", handler.DeleteCard)

	rg.GET("/cards/:id/members", handler.GetMembers)
	rg.POST("/cards/:id/members", handler.AddMember)
	rg.POST("/cards/:id/members/bulk", handler.AddMembersBulk)
	rg.DELETE("/cards/:id/members", handler.RemoveMember)

	rg.POST("/cards/:id/dates", handler.SetDates)
	rg.DELETE("/cards/:id/dates", handler.RemoveDates)

	rg.POST("/cards/:id/location", handler.SetLocation)
	rg.DELETE("/cards/:id/location", handler.RemoveLocation)
}
