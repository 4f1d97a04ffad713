package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"microfeed/internal/models"
	"microfeed/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestWSFeed_BroadcastsPublishedPosts(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{Authorization: auth}, nil)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/feed"
	header := http.Header{}
	header.Set("Cookie", sessionCookieName+"=tok")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer func() { _ = conn.Close() }()

	// Wait until the connection is registered before broadcasting.
	deadline := time.Now().Add(2 * time.Second)
	for h.hub.clientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never subscribed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	post := models.Post{ID: "p-1", Content: "hello", UserID: 7, Username: "alice"}
	h.hub.broadcast(post)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var env struct {
		Type string      `json:"type"`
		Data models.Post `json:"data"`
	}
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, msg)
	}
	if env.Type != "post" || env.Data.ID != "p-1" || env.Data.Content != "hello" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestWSFeed_RequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{Authorization: &mockAuth{}}, nil)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/feed"
	if _, _, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		t.Fatalf("expected dial to fail without a session")
	}
}

func TestFeedHub_SlowClientDoesNotBlockPublisher(t *testing.T) {
	hub := newFeedHub()
	ch := hub.subscribe()
	defer hub.unsubscribe(ch)

	// Fill the client queue and keep broadcasting; broadcast must return.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < clientBuffer*2; i++ {
			hub.broadcast(models.Post{ID: "p", Content: "x"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("broadcast blocked on a slow client")
	}
}
