package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "feed_session"
	flashCookieName   = "feed_flash"

	// Flash messages are shown once after a redirect; give the browser a
	// minute to fetch the next page.
	flashMaxAge = 60
)

// setSessionCookie attaches the signed session token as an HttpOnly browser
// session cookie. Expiry is enforced server-side by the token itself.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// clearSessionCookie removes the session cookie from the client.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// setFlash stores a one-shot status message shown after the next redirect.
func setFlash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, url.QueryEscape(msg), flashMaxAge, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, if any.
func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
