package middleware

import (
	"fmt"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// ClaimsKey holds the *utils.Claims of a verified request.
	ClaimsKey = "claims"
	// EmailKey holds the email of a verified request.
	EmailKey = "email"
)

// TokenValidator checks an access token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// VerifyToken rejects requests without an Authorization header with 401 and
// requests whose header is not a valid bearer token with 403. On success the
// claims and the email are stored on the context.
func VerifyToken(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			utils.AbortWithError(c, requestLogger(c), "verify token", utils.ErrUnauthenticated)
			return
		}
		token, ok := bearerToken(header)
		if !ok {
			err := fmt.Errorf("%w: malformed authorization header", utils.ErrForbidden)
			utils.AbortWithError(c, requestLogger(c), "verify token", err)
			return
		}
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			utils.AbortWithError(c, requestLogger(c), "verify token", err)
			return
		}
		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// bearerToken extracts the token of a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// Email returns the verified email of the request, if any.
func Email(c *gin.Context) string {
	return c.GetString(EmailKey)
}
