package middleware

import (
	"fmt"
	"net/http"

	"ExpenseAPI/logging"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a panic in a handler into a 500 response.
func RecoveryMiddleware(production bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logging.LogPanicValue(recovered, "recovered from panic in handler")

		message := utils.MsgServerError
		if !production {
			message = fmt.Sprint(recovered)
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, message)
	})
}
