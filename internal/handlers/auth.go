package handlers

import (
	"errors"
	"net/http"

	"microfeed/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errRegisterFailed = "failed to create account"
	errLoginFailed    = "invalid email or password"
)

// bindFormOrReject binds the submitted form into dst and writes a 400 JSON
// with per-field messages on failure. Returns false if the request was
// already handled.
func (h *Handler) bindFormOrReject(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("form_validation_failed", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": formErrors(err)})
		return false
	}
	return true
}

// @Summary      Registration page data
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /register [get]
func (h *Handler) getRegister(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": takeFlash(c)})
}

// @Summary      Create account
// @Description  Validates the registration form, hashes the password and creates the user. Does not log the new user in.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username          formData  string  true  "min length 3"
// @Param        email             formData  string  true  "login key, unique"
// @Param        password          formData  string  true  "min length 6"
// @Param        confirm_password  formData  string  true  "must equal password"
// @Success      303  "redirect to /login"
// @Failure      400  {object}  map[string]map[string]string
// @Failure      409  {object}  map[string]map[string]string
// @Router       /register [post]
func (h *Handler) postRegister(c *gin.Context) {
	var form registerForm
	if ok := h.bindFormOrReject(c, &form); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": "Email is already registered."}})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRegisterFailed, "register_failed", err, "email", form.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("user_registered", "id", id, "username", form.Username)
	}
	setFlash(c, "Account created, please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// @Summary      Login page data
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /login [get]
func (h *Handler) getLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": takeFlash(c)})
}

// @Summary      Establish session
// @Description  Verifies credentials and sets the session cookie. The failure message does not reveal whether the email exists.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "login key"
// @Param        password  formData  string  true  "plaintext, compared against the stored hash"
// @Success      303  "redirect to /"
// @Failure      400  {object}  map[string]map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) postLogin(c *gin.Context) {
	var form loginForm
	if ok := h.bindFormOrReject(c, &form); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same generic message for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": errLoginFailed})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "login failed", "login_failed", err)
		return
	}

	setSessionCookie(c, token)
	setFlash(c, "Welcome back.")
	c.Redirect(http.StatusSeeOther, "/")
}

// @Summary      Clear session
// @Tags         auth
// @Success      303  "redirect to /login"
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	clearSessionCookie(c)
	setFlash(c, "Logged out.")
	c.Redirect(http.StatusSeeOther, "/login")
}
