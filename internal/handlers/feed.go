package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errListFeed    = "failed to load feed"
	errPublishPost = "failed to publish post"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Feed
// @Description  Every post across all users, newest first, joined with the author's username.
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "posts, count, flash"
// @Failure      302  "redirect to /login when unauthenticated"
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *Handler) getFeed(c *gin.Context) {
	posts, err := h.services.Feed.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListFeed, "feed_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
		"flash": takeFlash(c),
	})
}

// @Summary      Publish post
// @Description  Creates a post owned by the session's user and redirects back to the feed (POST-redirect-GET, so a refresh cannot double-submit).
// @Tags         feed
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        content  formData  string  true  "max 280 characters"
// @Success      303  "redirect to /"
// @Failure      302  "redirect to /login when unauthenticated"
// @Failure      400  {object}  map[string]interface{}  "errors, posts"
// @Failure      500  {object}  map[string]string
// @Router       / [post]
func (h *Handler) postFeed(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		// A rejected submission still shows the current feed alongside
		// the field errors.
		resp := gin.H{"errors": formErrors(err)}
		if posts, listErr := h.services.Feed.List(c.Request.Context()); listErr == nil {
			resp["posts"] = posts
			resp["count"] = len(posts)
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	userID := currentUserID(c)
	post, err := h.services.Feed.Publish(c.Request.Context(), userID, form.Content)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errPublishPost, "post_publish_failed", err, "user_id", userID)
		return
	}

	h.hub.broadcast(post)
	setFlash(c, "Post published.")
	c.Redirect(http.StatusSeeOther, "/")
}
