package middleware

import (
	"jersey-storefront/internal/pkg/config"
	"jersey-storefront/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// CartSession resolves the cart session from its cookie, issuing a new one when the
// cookie is missing or not a session id.
func CartSession(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cookie.GetSessionID(c, cfg)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}
		// Refresh on every request so active carts keep their cookie.
		cookie.SetSessionCookie(c, cfg, sessionID)

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
