package controllers

import (
	"net/http"

	"ExpenseAPI/services"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

var userStatuses = statusMap{
	utils.KindNotFound: http.StatusNotFound,
}

// controller profile

func (h *UserController) GetUserProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.UserService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, userStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, utils.MsgFetched, user)
}
