package middleware

import (
	"visionflow/internal/transport/httpdto"
	"visionflow/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors that handlers attached to the context into
// the uniform error body. Detail stays in the server log.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("request error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.JSON(c.Writer.Status(), httpdto.NewErrorResponse(err.Error()))
		}
	}
}
