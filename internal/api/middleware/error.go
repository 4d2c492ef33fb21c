package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"datacenter-optimizer/internal/api/models"
)

// ErrorHandler converts panics anywhere in the handler chain into the API's
// standard error envelope, so a crashed run and a failed run look the same
// to clients.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		var msg string
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		default:
			msg = fmt.Sprintf("unexpected failure: %v", v)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
