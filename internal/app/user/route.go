package user

import "github.com/gin-gonic/gin"

func RegisterAuthRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/auth/register", handler.Register)
	rg.POST("/auth/login", handler.Login)
}

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/users", handler.GetAllUsers)
}
