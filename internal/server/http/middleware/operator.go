package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OperatorKeyHeader carries the key guarding catalog and user management.
const OperatorKeyHeader = "X-Operator-Key"

// KeyVerifier validates presented operator keys.
type KeyVerifier interface {
	Verify(presented string) error
}

// OperatorRequired rejects requests without a valid operator key.
func OperatorRequired(verifier KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(OperatorKeyHeader)
		if key == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if err := verifier.Verify(key); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
