package handlers

import (
	"ExpenseAPI/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes sets up the User routes
func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController, authMiddleware gin.HandlerFunc) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("/profile", authMiddleware, userController.GetUserProfile)
	}
}
