package handlers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Submitted form payloads. Rules are all-or-nothing per submission: any
// failing field rejects the whole operation.

type registerForm struct {
	Username        string `form:"username" binding:"required,min=3"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type editProfileForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
}

type postForm struct {
	Content string `form:"content" binding:"required,max=280"`
}

// formErrors maps a binding failure to per-field messages keyed by the form
// field name.
func formErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "invalid form submission"
		return out
	}

	for _, fe := range verrs {
		out[formFieldName(fe.Field())] = formFieldMessage(fe)
	}
	return out
}

// formFieldName converts a struct field name to its form key
// (ConfirmPassword -> confirm_password).
func formFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "email":
		return "Invalid email address."
	case "eqfield":
		return "Passwords must match."
	default:
		return "Invalid value."
	}
}
