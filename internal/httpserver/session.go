package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "tienda_session"
	sessionCtxKey = "sessionID"
	cookieMaxAge  = 24 * 60 * 60
)

// sessionMiddleware assigns every cart-touching request an opaque session
// id, minting one on first contact and echoing it back as a cookie.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sid, cookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
