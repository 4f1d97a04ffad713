package handlers

import (
	"errors"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func validateStruct(t *testing.T, v any) error {
	t.Helper()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatalf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return engine.Struct(v)
}

func TestFormErrors_FieldMapping(t *testing.T) {
	tests := []struct {
		name       string
		form       any
		wantFields []string
	}{
		{
			name:       "register: all fields missing",
			form:       registerForm{},
			wantFields: []string{"username", "email", "password", "confirm_password"},
		},
		{
			name: "register: short username, bad email",
			form: registerForm{
				Username:        "al",
				Email:           "not-an-email",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			wantFields: []string{"username", "email"},
		},
		{
			name: "register: confirmation mismatch",
			form: registerForm{
				Username:        "alice",
				Email:           "a@x.com",
				Password:        "secret1",
				ConfirmPassword: "secret2",
			},
			wantFields: []string{"confirm_password"},
		},
		{
			name:       "login: password required only",
			form:       loginForm{Email: "a@x.com"},
			wantFields: []string{"password"},
		},
		{
			name:       "post: over 280 characters",
			form:       postForm{Content: strings.Repeat("a", 281)},
			wantFields: []string{"content"},
		},
		{
			name:       "edit profile: email shape",
			form:       editProfileForm{Username: "alice", Email: "nope"},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validateStruct(t, tt.form)
			if err == nil {
				t.Fatalf("expected validation failure")
			}

			errs := formErrors(err)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %v", len(tt.wantFields), errs)
			}
			for _, f := range tt.wantFields {
				if errs[f] == "" {
					t.Fatalf("expected message for %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestFormErrors_ValidFormsPass(t *testing.T) {
	valid := []any{
		registerForm{Username: "alice", Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1"},
		loginForm{Email: "a@x.com", Password: "secret1"},
		editProfileForm{Username: "alice", Email: "a@x.com"},
		postForm{Content: strings.Repeat("a", 280)},
	}
	for _, f := range valid {
		if err := validateStruct(t, f); err != nil {
			t.Fatalf("expected %T to pass, got %v", f, err)
		}
	}
}

func TestFormErrors_NonValidatorError(t *testing.T) {
	errs := formErrors(errors.New("EOF"))
	if errs["form"] == "" {
		t.Fatalf("expected generic form error, got %v", errs)
	}
}

func TestFormFieldName(t *testing.T) {
	cases := map[string]string{
		"Username":        "username",
		"Email":           "email",
		"ConfirmPassword": "confirm_password",
		"Content":         "content",
	}
	for in, want := range cases {
		if got := formFieldName(in); got != want {
			t.Fatalf("formFieldName(%q) = %q, want %q", in, got, want)
		}
	}
}
