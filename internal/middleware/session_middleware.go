package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "storefront_session"

// ContextSessionID is the gin context key carrying the session id.
const ContextSessionID = "session_id"

// Session assigns every caller a session id cookie. The id namespaces all
// persisted state, so two browser contexts sharing the cookie share one
// cart and wishlist.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, int((30 * 24 * 60 * 60)), "/", "", false, true)
		}
		c.Set(ContextSessionID, sid)
		c.Next()
	}
}

// SessionID reads the current session id from the gin context.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
