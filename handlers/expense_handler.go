package handlers

import (
	"ExpenseAPI/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes mounts the expense routes; every one of them sits
// behind authMiddleware.
func RegisterExpenseRoutes(router *gin.RouterGroup, expenseController *controllers.ExpenseController, authMiddleware gin.HandlerFunc) {
	expenseGroup := router.Group("/expenses", authMiddleware)
	{
		expenseGroup.GET("", expenseController.GetExpenses)
		expenseGroup.GET("/:id", expenseController.GetExpense)
		expenseGroup.POST("", expenseController.CreateExpense)
		expenseGroup.PUT("/:id", expenseController.UpdateExpense)
		expenseGroup.DELETE("/:id", expenseController.DeleteExpense)
	}
}
