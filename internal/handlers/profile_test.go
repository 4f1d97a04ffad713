package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"microfeed/internal/models"
	"microfeed/internal/service"
)

func getWithSession(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Cookie", sessionCookieName+"="+token)
	r.ServeHTTP(w, req)
	return w
}

func TestViewProfile(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice", Email: "a@x.com"}

	t.Run("found", func(t *testing.T) {
		auth := &mockAuth{parseID: 2} // any authenticated user may view
		profiles := &mockProfiles{getUser: alice}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := getWithSession(r, "/profile/1", "tok")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var resp struct {
			User models.User `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.User.Username != "alice" {
			t.Fatalf("unexpected user: %+v", resp.User)
		}
	})

	t.Run("missing user is a 404", func(t *testing.T) {
		auth := &mockAuth{parseID: 2}
		profiles := &mockProfiles{getErr: service.ErrUserNotFound}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		if w := getWithSession(r, "/profile/99", "tok"); w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("non-numeric id is a 404", func(t *testing.T) {
		auth := &mockAuth{parseID: 2}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: &mockProfiles{}})

		if w := getWithSession(r, "/profile/abc", "tok"); w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unauthenticated view redirects to login", func(t *testing.T) {
		r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/profile/1", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Fatalf("expected redirect to /login, got %d %q", w.Code, w.Header().Get("Location"))
		}
	})
}

func TestEditProfile(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice", Email: "a@x.com"}
	valid := map[string]string{"username": "alice2", "email": "a2@x.com"}

	t.Run("get pre-populates current values for the owner", func(t *testing.T) {
		auth := &mockAuth{parseID: 1}
		profiles := &mockProfiles{getUser: alice}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := getWithSession(r, "/profile/1/edit", "tok")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["username"] != "alice" || resp["email"] != "a@x.com" {
			t.Fatalf("unexpected form data: %v", resp)
		}
	})

	t.Run("get refused for another user's account", func(t *testing.T) {
		auth := &mockAuth{parseID: 2}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: &mockProfiles{getUser: alice}})

		if w := getWithSession(r, "/profile/1/edit", "tok"); w.Code != http.StatusForbidden {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("post overwrites username and email", func(t *testing.T) {
		auth := &mockAuth{parseID: 1}
		profiles := &mockProfiles{getUser: alice}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := submitForm(r, "/profile/1/edit", valid, sessionHeader("tok"))
		if w.Code != http.StatusSeeOther {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "/profile/1" {
			t.Fatalf("expected redirect to /profile/1, got %q", loc)
		}
		if profiles.updateCalls != 1 || profiles.lastActorID != 1 || profiles.lastUser != "alice2" || profiles.lastEmail != "a2@x.com" {
			t.Fatalf("unexpected update call: %+v", profiles)
		}
	})

	t.Run("post refused for another user's account", func(t *testing.T) {
		auth := &mockAuth{parseID: 2}
		profiles := &mockProfiles{updateErr: service.ErrForbidden}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		if w := submitForm(r, "/profile/1/edit", valid, sessionHeader("tok")); w.Code != http.StatusForbidden {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("post with invalid email rejected before the service", func(t *testing.T) {
		auth := &mockAuth{parseID: 1}
		profiles := &mockProfiles{}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := submitForm(r, "/profile/1/edit", map[string]string{"username": "alice2", "email": "nope"}, sessionHeader("tok"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if profiles.updateCalls != 0 {
			t.Fatalf("service must not be called on validation failure")
		}
	})

	t.Run("post taking another user's email conflicts", func(t *testing.T) {
		auth := &mockAuth{parseID: 1}
		profiles := &mockProfiles{updateErr: service.ErrEmailTaken}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		if w := submitForm(r, "/profile/1/edit", valid, sessionHeader("tok")); w.Code != http.StatusConflict {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("owner delete clears session and redirects to register", func(t *testing.T) {
		auth := &mockAuth{parseID: 1}
		profiles := &mockProfiles{}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := submitForm(r, "/profile/1/delete", nil, sessionHeader("tok"))
		if w.Code != http.StatusSeeOther {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "/register" {
			t.Fatalf("expected redirect to /register, got %q", loc)
		}
		if profiles.deleteCalls != 1 || profiles.lastActorID != 1 || profiles.lastID != 1 {
			t.Fatalf("unexpected delete call: %+v", profiles)
		}

		var cleared bool
		for _, sc := range w.Result().Cookies() {
			if sc.Name == sessionCookieName && sc.Value == "" && sc.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Fatalf("expected session cookie cleared, got %v", w.Result().Cookies())
		}
	})

	t.Run("non-owner delete forbidden and session kept", func(t *testing.T) {
		auth := &mockAuth{parseID: 2}
		profiles := &mockProfiles{deleteErr: service.ErrForbidden}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := submitForm(r, "/profile/1/delete", nil, sessionHeader("tok"))
		if w.Code != http.StatusForbidden {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		for _, sc := range w.Result().Cookies() {
			if sc.Name == sessionCookieName {
				t.Fatalf("session cookie must not be touched on refusal")
			}
		}
	})

	t.Run("plain GET navigation cannot delete", func(t *testing.T) {
		auth := &mockAuth{parseID: 1}
		profiles := &mockProfiles{}
		r := newTestRouter(&service.Service{Authorization: auth, Profiles: profiles})

		w := getWithSession(r, "/profile/1/delete", "tok")
		if w.Code == http.StatusSeeOther || profiles.deleteCalls != 0 {
			t.Fatalf("GET must not delete (status=%d, calls=%d)", w.Code, profiles.deleteCalls)
		}
	})
}
