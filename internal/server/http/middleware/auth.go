package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/bnplmart/internal/pkg/auth"
)

// UserIDContextKey is a gin context key for the authenticated user identifier.
const UserIDContextKey = "userID"

// TokenParser resolves an access token to the user it was issued to.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// UserRequired admits a request only when its bearer token was issued to the
// user named by the :id path parameter. A valid operator key is accepted in
// place of a token; an invalid one is rejected without looking at the token.
func UserRequired(tokens TokenParser, operators KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(OperatorKeyHeader); key != "" {
			if err := operators.Verify(key); err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := tokens.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if userID != c.Param("id") {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// SetAuthHeader exposes a freshly issued token to the client.
func SetAuthHeader(c *gin.Context, token string) {
	c.Header("Authorization", "Bearer "+token)
}
