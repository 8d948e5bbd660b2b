package utils

import (
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Stack   CallStack   `json:"stack,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Error:   false,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, APIResponse{
		Error:   true,
		Message: message,
	})
}

// ErrorResponseWithStack is used by the fallback handler outside production.
func ErrorResponseWithStack(c *gin.Context, statusCode int, message string, stack CallStack) {
	c.AbortWithStatusJSON(statusCode, APIResponse{
		Error:   true,
		Message: message,
		Stack:   stack,
	})
}
