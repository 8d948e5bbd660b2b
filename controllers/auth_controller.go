package controllers

import (
	"net/http"

	"ExpenseAPI/models"
	"ExpenseAPI/services"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

var authStatuses = statusMap{
	utils.KindValidationFailed: http.StatusBadRequest,
	utils.KindAlreadyExists:    http.StatusBadRequest,
	utils.KindUnauthorized:     http.StatusUnauthorized,
}

func (a *AuthController) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	user, err := a.AuthService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err, authStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, utils.MsgRegistered, user)
}

func (a *AuthController) LoginUser(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	resp, err := a.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err, authStatuses)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, utils.MsgLoggedIn, resp)
}
