package middleware

import (
	"errors"
	"net/http"

	"ExpenseAPI/logging"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware renders the last error attached with c.Error.
// CustomErrors keep their status; anything else becomes a 500 carrying the
// error message, and the call stack when not in production.
func ErrorHandlerMiddleware(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		logging.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")

		if production {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		stack := utils.StackOf(err)
		if stack == nil {
			stack = utils.Trace()
		}
		utils.ErrorResponseWithStack(c, http.StatusInternalServerError, err.Error(), stack)
	}
}
