package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"microfeed/internal/models"
	"microfeed/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	loginToken  string
	loginErr    error
	parseID     int
	parseErr    error

	lastRegisterUsername string
	lastRegisterEmail    string
	lastRegisterPassword string
	lastLoginEmail       string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}
func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}
func (m *mockAuth) ParseSession(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProfiles struct {
	getUser   *models.User
	getErr    error
	updateErr error
	deleteErr error

	updateCalls int
	deleteCalls int
	lastActorID int
	lastID      int
	lastUser    string
	lastEmail   string
}

func (m *mockProfiles) Get(ctx context.Context, id int) (*models.User, error) {
	m.lastID = id
	return m.getUser, m.getErr
}
func (m *mockProfiles) Update(ctx context.Context, actorID, id int, username, email string) error {
	m.updateCalls++
	m.lastActorID = actorID
	m.lastID = id
	m.lastUser = username
	m.lastEmail = email
	return m.updateErr
}
func (m *mockProfiles) Delete(ctx context.Context, actorID, id int) error {
	m.deleteCalls++
	m.lastActorID = actorID
	m.lastID = id
	return m.deleteErr
}

type mockFeed struct {
	listResp    []models.Post
	listErr     error
	publishResp models.Post
	publishErr  error

	publishCalls    int
	lastPublishUser int
	lastContent     string
}

func (m *mockFeed) List(ctx context.Context) ([]models.Post, error) {
	return m.listResp, m.listErr
}
func (m *mockFeed) Publish(ctx context.Context, userID int, content string) (models.Post, error) {
	m.publishCalls++
	m.lastPublishUser = userID
	m.lastContent = content
	return m.publishResp, m.publishErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// formBody encodes url-encoded form fields for a POST.
func formBody(fields map[string]string) *strings.Reader {
	v := url.Values{}
	for k, val := range fields {
		v.Set(k, val)
	}
	return strings.NewReader(v.Encode())
}

func sessionHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Cookie", sessionCookieName+"="+token)
	}
	return h
}
