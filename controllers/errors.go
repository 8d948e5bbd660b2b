package controllers

import (
	"net/http"

	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

// statusMap maps service error kinds to HTTP statuses for one controller.
type statusMap map[utils.ErrorKind]int

// fail translates a service error into a CustomError for the error
// middleware. Kinds the controller does not map are passed through
// untouched so the fallback handler reports them.
func fail(c *gin.Context, err error, statuses statusMap) {
	if status, ok := statuses[utils.KindOf(err)]; ok {
		_ = c.Error(utils.NewCustomError(status, utils.MessageOf(err)))
		return
	}
	_ = c.Error(err)
}

func validationFailed(c *gin.Context, err error) {
	message := utils.MsgValidationFailed
	if err != nil {
		message = message + ": " + err.Error()
	}
	utils.ErrorResponse(c, http.StatusBadRequest, message)
}
