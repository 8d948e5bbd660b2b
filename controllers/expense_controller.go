package controllers

import (
	"net/http"

	"ExpenseAPI/middleware"
	"ExpenseAPI/models"
	"ExpenseAPI/services"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	ExpenseService *services.ExpenseService
}

func NewExpenseController(expenseService *services.ExpenseService) *ExpenseController {
	return &ExpenseController{ExpenseService: expenseService}
}

// Ownership failures are 403; the token itself was valid.
var expenseStatuses = statusMap{
	utils.KindValidationFailed: http.StatusBadRequest,
	utils.KindUnauthorized:     http.StatusForbidden,
	utils.KindNotFound:         http.StatusNotFound,
}

func (e *ExpenseController) GetExpenses(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := e.ExpenseService.GetExpenses(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, expenseStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, utils.MsgFetched, expenses)
}

func (e *ExpenseController) GetExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	expense, err := e.ExpenseService.GetExpense(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		fail(c, err, expenseStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, utils.MsgFetched, expense)
}

func (e *ExpenseController) CreateExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	expense, err := e.ExpenseService.CreateExpense(c.Request.Context(), models.ExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		UserID:   userID,
	})
	if err != nil {
		fail(c, err, expenseStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, utils.MsgCreated, expense)
}

func (e *ExpenseController) UpdateExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	expense, err := e.ExpenseService.UpdateExpense(c.Request.Context(), c.Param("id"), models.ExpenseUpdate{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		UserID:   userID,
	})
	if err != nil {
		fail(c, err, expenseStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, utils.MsgUpdated, expense)
}

func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := e.ExpenseService.DeleteExpense(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		fail(c, err, expenseStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// currentUser reads the id set by the auth middleware, answering 401 itself
// when it is missing.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, utils.MsgUnauthorized)
		return "", false
	}
	return userID, true
}
