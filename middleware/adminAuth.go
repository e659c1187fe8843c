package middleware

import (
	"context"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// AdminChecker fails with utils.ErrForbidden unless email belongs to an admin.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, email string) error
}

// RequireAdmin must run after VerifyToken.
func RequireAdmin(admins AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := Email(c)
		if email == "" {
			utils.AbortWithError(c, requestLogger(c), "require admin", utils.ErrUnauthenticated)
			return
		}
		if err := admins.RequireAdmin(c.Request.Context(), email); err != nil {
			utils.AbortWithError(c, requestLogger(c), "require admin", err)
			return
		}
		c.Next()
	}
}
