package middleware

import (
	"context"
	"net/http"
	"strings"

	"ExpenseAPI/logging"
	"ExpenseAPI/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userId"

type ctxKey string

const ctxUserIDKey ctxKey = "auth_user_id"

// TokenVerifier checks a session token and returns its user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) < 2 {
			utils.ErrorResponse(c, http.StatusUnauthorized, utils.MsgNoToken)
			return
		}
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, utils.MsgInvalidToken)
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			logging.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("rejected token")
			utils.ErrorResponse(c, http.StatusUnauthorized, utils.MsgInvalidToken)
			return
		}

		c.Set(UserIDKey, userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ctxUserIDKey, userID))
		c.Next()
	}
}

// UserIDFromContext returns the user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxUserIDKey).(string)
	return userID, ok && userID != ""
}
