package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// sessionMiddleware is the auth gate: it resolves the session cookie into a
// user id once at the entry boundary and stores it in the request context.
// Requests without a valid session are redirected to /login and the guarded
// handler never runs.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	userID, err := h.services.ParseSession(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_rejected", "err", err)
		}
		clearSessionCookie(c)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	// store in Gin context
	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID returns the user id resolved by sessionMiddleware.
func currentUserID(c *gin.Context) int {
	v, _ := c.Get(userIDKey)
	id, _ := v.(int)
	return id
}
