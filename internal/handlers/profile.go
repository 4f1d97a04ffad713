package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"microfeed/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errProfileNotFound = "user not found"
	errNotOwner        = "you may only modify your own account"
	errUpdateProfile   = "failed to update profile"
	errDeleteAccount   = "failed to delete account"
)

// profileID parses the :id path parameter. A non-numeric id is treated the
// same as a missing user.
func profileID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errProfileNotFound})
		return 0, false
	}
	return id, true
}

// respondProfileError maps service errors from profile mutations to HTTP.
func (h *Handler) respondProfileError(c *gin.Context, userMsg, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": errNotOwner})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errProfileNotFound})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": "Email is already registered."}})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err)
	}
}

// @Summary      View profile
// @Tags         profile
// @Produce      json
// @Param        id   path  int  true  "user id"
// @Success      200  {object}  models.User
// @Failure      302  "redirect to /login when unauthenticated"
// @Failure      404  {object}  map[string]string
// @Router       /profile/{id} [get]
func (h *Handler) viewProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	user, err := h.services.Profiles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondProfileError(c, errProfileNotFound, "profile_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "flash": takeFlash(c)})
}

// @Summary      Edit profile form data
// @Description  Current values for form pre-population. Only the account owner may open the edit surface.
// @Tags         profile
// @Produce      json
// @Param        id   path  int  true  "user id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile/{id}/edit [get]
func (h *Handler) getEditProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}
	if currentUserID(c) != id {
		c.JSON(http.StatusForbidden, gin.H{"error": errNotOwner})
		return
	}

	user, err := h.services.Profiles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondProfileError(c, errProfileNotFound, "profile_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
		"flash":    takeFlash(c),
	})
}

// @Summary      Update profile
// @Description  Overwrites username and email. Only the account owner may mutate it.
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id        path      int     true  "user id"
// @Param        username  formData  string  true  "new username"
// @Param        email     formData  string  true  "new email"
// @Success      303  "redirect to /profile/{id}"
// @Failure      400  {object}  map[string]map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]map[string]string
// @Router       /profile/{id}/edit [post]
func (h *Handler) postEditProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	var form editProfileForm
	if ok := h.bindFormOrReject(c, &form); !ok {
		return
	}

	if err := h.services.Profiles.Update(c.Request.Context(), currentUserID(c), id, form.Username, form.Email); err != nil {
		h.respondProfileError(c, errUpdateProfile, "profile_update_failed", err)
		return
	}

	setFlash(c, "Profile updated.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/profile/%d", id))
}

// @Summary      Delete account
// @Description  Explicit confirmation action (POST only). Deletes the account and its posts, clears the session and redirects to registration.
// @Tags         profile
// @Produce      json
// @Param        id   path  int  true  "user id"
// @Success      303  "redirect to /register"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /profile/{id}/delete [post]
func (h *Handler) deleteAccount(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	if err := h.services.Profiles.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondProfileError(c, errDeleteAccount, "account_delete_failed", err)
		return
	}

	if h.log != nil {
		h.log.Infow("account_deleted", "id", id)
	}
	clearSessionCookie(c)
	setFlash(c, "Account deleted.")
	c.Redirect(http.StatusSeeOther, "/register")
}
