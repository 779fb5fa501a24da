package handler

import (
	"fmt"
	"net/http"

	"chatboard/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// badRequest answers a body that misses a required field.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(msg, httpdto.CodeInvalidRequest))
}

// serviceFailure hands err to the ErrorHandler middleware, which renders it.
// Every service error is a 500 whatever its kind.
func serviceFailure(c *gin.Context, action string, err error) {
	c.Status(http.StatusInternalServerError)
	_ = c.Error(fmt.Errorf("Error when %s: %w", action, err))
	c.Abort()
}
