//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/infrastructure/realtime"
	"github.com/PHedro/recipes/internal/pkg/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedTestServer wires the feed route behind token auth and returns the
// server together with its hub.
func feedTestServer(t *testing.T, authService *MockAuthService) (*httptest.Server, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := realtime.NewHub()
	t.Cleanup(hub.Close)

	r := gin.New()
	feedHandler := NewFeedHandler(hub, testutil.SetupTestLogger(t))
	api := r.Group("/api", TokenAuthMiddleware(authService))
	api.GET("/feed/ws", feedHandler.Stream)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func dialFeed(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/feed/ws?token=" + token
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestFeedHandler_Stream_DeliversSubscribedEvents(t *testing.T) {
	caller := testCaller()
	mockAuth := new(MockAuthService)
	mockAuth.On("Authenticate", mock.Anything, "feed-token").Return(caller, nil)

	srv, hub := feedTestServer(t, mockAuth)
	client := dialFeed(t, srv, "feed-token")

	recipeID := uuid.NewString()
	require.NoError(t, client.WriteJSON(feedFrame{Action: "subscribe", RecipeID: recipeID}))

	// The subscribe frame lands through the server read loop, so deliveries
	// start once the room membership is in place.
	payload := []byte(`{"kind":"comment"}`)
	require.Eventually(t, func() bool {
		return hub.Broadcast(recipeID, payload, "") == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	_, received, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, payload, received)
	mockAuth.AssertExpectations(t)
}

func TestFeedHandler_Stream_ExcludesActor(t *testing.T) {
	caller := testCaller()
	mockAuth := new(MockAuthService)
	mockAuth.On("Authenticate", mock.Anything, "feed-token").Return(caller, nil)

	srv, hub := feedTestServer(t, mockAuth)
	client := dialFeed(t, srv, "feed-token")

	recipeID := uuid.NewString()
	require.NoError(t, client.WriteJSON(feedFrame{Action: "subscribe", RecipeID: recipeID}))

	require.Eventually(t, func() bool {
		return hub.Broadcast(recipeID, []byte(`{"kind":"like"}`), "") == 1
	}, time.Second, 10*time.Millisecond)

	// The subscriber's own activity is not echoed back
	assert.Zero(t, hub.Broadcast(recipeID, []byte(`{"kind":"like"}`), caller.ID))
}

func TestFeedHandler_Stream_UnsubscribeStopsDelivery(t *testing.T) {
	caller := testCaller()
	mockAuth := new(MockAuthService)
	mockAuth.On("Authenticate", mock.Anything, "feed-token").Return(caller, nil)

	srv, hub := feedTestServer(t, mockAuth)
	client := dialFeed(t, srv, "feed-token")

	recipeID := uuid.NewString()
	require.NoError(t, client.WriteJSON(feedFrame{Action: "subscribe", RecipeID: recipeID}))
	require.Eventually(t, func() bool {
		return hub.Broadcast(recipeID, []byte(`{}`), "") == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, client.WriteJSON(feedFrame{Action: "unsubscribe", RecipeID: recipeID}))
	require.Eventually(t, func() bool {
		return hub.Broadcast(recipeID, []byte(`{}`), "") == 0
	}, time.Second, 10*time.Millisecond)
}

func TestFeedHandler_Stream_WithoutCredentials(t *testing.T) {
	mockAuth := new(MockAuthService)
	srv, _ := feedTestServer(t, mockAuth)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/feed/ws"
	client, response, err := websocket.DefaultDialer.Dial(url, nil)
	if client != nil {
		_ = client.Close()
	}
	require.Error(t, err)
	require.NotNil(t, response)
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
	mockAuth.AssertNotCalled(t, "Authenticate")
}
