package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-storefront/session"
)

const SessionCookie = "storefront_session"

// SessionMiddleware restores the customer's session from the cookie, or
// issues a fresh one, and places it on the request context for the
// controllers.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)

		sess := manager.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
		}

		c.Set("session", sess)
		c.Next()
	}
}
