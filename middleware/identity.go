package middleware

import (
	"strings"

	"github.com/foundanand/trackmygov/utils"
	"github.com/gin-gonic/gin"
)

// ClientIdentity copies the X-Client-Id header into the context. Requests
// without it pass through; handlers fall back to body fields.
func ClientIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(utils.ClientIDHeader)); id != "" {
			c.Set(string(utils.ClientContextKey), id)
		}
		c.Next()
	}
}
