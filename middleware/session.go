package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the anonymous session key that carts are keyed on.
const SessionHeader = "X-Session-Key"

// SessionKey reads the session key from the request, minting a fresh one for
// first-time visitors, and echoes it back so the client can persist it.
func SessionKey(c *gin.Context) {
	key := c.GetHeader(SessionHeader)
	if key == "" {
		key = uuid.NewString()
	}
	c.Set("session_key", key)
	c.Header(SessionHeader, key)
	c.Next()
}
