package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// ErrUnauthenticated means no credential was presented.
	ErrUnauthenticated = errors.New("unauthorized access")
	// ErrForbidden covers bad credentials, insufficient role and ownership mismatches.
	ErrForbidden = errors.New("forbidden access")
	ErrNotFound  = errors.New("not found")
	// ErrInvalidInput marks request data the server refuses to act on.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatusFor maps an error onto the HTTP status the API reports for it.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// AbortWithError classifies err, logs it and aborts the request. Internal
// errors are reported with a generic message; their detail stays in the log.
func AbortWithError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" failed", zap.Error(err))
		c.AbortWithStatusJSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	logger.Warn(op+" rejected", zap.Int("status", status), zap.Error(err))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: publicMessage(err)})
}

func publicMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "UnAuthorized access"
	case errors.Is(err, ErrForbidden):
		return "Forbidden access"
	default:
		return err.Error()
	}
}
