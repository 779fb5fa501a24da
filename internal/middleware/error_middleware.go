package middleware

import (
	"net/http"

	"chatboard/internal/transport/httpdto"
	chatboard_errors "chatboard/pkg/errors"
	"chatboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error as an error envelope.
// The status set by the handler is kept; the code comes from the service error kind.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("request error: %s", err.Error())
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), chatboard_errors.KindOf(err).String()))
	}
}
