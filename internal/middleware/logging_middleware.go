package middleware

import (
	"fmt"
	"time"

	"chatboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware writes one access log line per request. Client errors log at
// warn, server errors at error.
func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log == nil {
			return
		}

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, zap.String("route", route))
		}

		entry := log.WithContext(c.Request.Context()).Logger
		msg := fmt.Sprintf("%s %s %d", method, path, status)
		switch {
		case status >= 500:
			entry.Error(msg, fields...)
		case status >= 400:
			entry.Warn(msg, fields...)
		default:
			entry.Info(msg, fields...)
		}
	}
}
