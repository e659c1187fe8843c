package handlers

import (
	"fmt"

	"doctorsportal/middleware"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped Zap logger from the Gin context,
// falling back to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// respondError classifies err and writes the matching error response.
func respondError(c *gin.Context, op string, err error) {
	utils.AbortWithError(c, getLogger(c), op, err)
}

// respondBindError reports a request body that failed to decode or validate.
func respondBindError(c *gin.Context, op string, err error) {
	respondError(c, op, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err))
}
