package utils

import (
	"github.com/gin-gonic/gin"
)

// ClientIDHeader carries the pseudo-identity the browser generates and keeps
// in local storage. It is trusted as-is; nothing verifies it.
const ClientIDHeader = "X-Client-Id"

type contextKey string

const ClientContextKey contextKey = "client_id"

// GetClientID returns the caller's pseudo-identity, or "" if none was sent.
func GetClientID(c *gin.Context) string {
	id, exists := c.Get(string(ClientContextKey))
	if !exists {
		return ""
	}
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}

// ClientIDOr returns v when set, otherwise the header identity.
func ClientIDOr(c *gin.Context, v string) string {
	if v != "" {
		return v
	}
	return GetClientID(c)
}
