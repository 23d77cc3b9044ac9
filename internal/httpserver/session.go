package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cookiePrefix    = "shop_"
	cookieSessionID = cookiePrefix + "session-id"
	cookieMaxAge    = 60 * 60 * 48

	ctxSessionID = "sessionID"
)

// ensureSessionID assigns each browser a session id cookie; the id keys the
// session's cart slot.
func ensureSessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieSessionID)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieSessionID, sessionID, cookieMaxAge, "/", "", false, true)
		}
		c.Set(ctxSessionID, sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
