//go:build unit
// +build unit

package realtime

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{}

// dialTestConn spins up a websocket pair and returns both ends.
func dialTestConn(t *testing.T) (serverWS *websocket.Conn, clientWS *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- ws
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientWS, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientWS.Close() })

	select {
	case serverWS = <-serverConns:
	case <-time.After(time.Second):
		t.Fatal("server side of the websocket never arrived")
	}
	return serverWS, clientWS
}

func TestHub_BroadcastToRoom(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	actorWS, _ := dialTestConn(t)
	actor := NewConnection("actor", actorWS)
	hub.Attach(actor)
	hub.Subscribe("recipe-1", actor)

	watcherWS, watcherClient := dialTestConn(t)
	watcher := NewConnection("watcher", watcherWS)
	hub.Attach(watcher)
	hub.Subscribe("recipe-1", watcher)

	elsewhereWS, elsewhereClient := dialTestConn(t)
	elsewhere := NewConnection("elsewhere", elsewhereWS)
	hub.Attach(elsewhere)
	hub.Subscribe("recipe-2", elsewhere)

	payload := []byte(`{"kind":"comment","recipe_id":"recipe-1"}`)
	delivered := hub.Broadcast("recipe-1", payload, "actor")
	assert.Equal(t, 1, delivered)

	// Only the watcher of recipe-1 receives the event
	require.NoError(t, watcherClient.SetReadDeadline(time.Now().Add(time.Second)))
	_, received, err := watcherClient.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, payload, received)

	require.NoError(t, elsewhereClient.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = elsewhereClient.ReadMessage()
	assert.Error(t, err)
}

func TestHub_AttachReplacesSession(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	firstWS, firstClient := dialTestConn(t)
	first := NewConnection("viewer", firstWS)
	hub.Attach(first)
	hub.Subscribe("recipe-1", first)

	secondWS, _ := dialTestConn(t)
	second := NewConnection("viewer", secondWS)
	hub.Attach(second)

	// The replaced socket is closed with the session-replaced code
	require.NoError(t, firstClient.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := firstClient.ReadMessage()
	var closeErr *websocket.CloseError
	require.True(t, errors.As(err, &closeErr))
	assert.Equal(t, 4001, closeErr.Code)

	// Room memberships of the replaced session are gone
	assert.Zero(t, hub.Broadcast("recipe-1", []byte(`{}`), ""))
}

func TestHub_DetachStopsDelivery(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ws, _ := dialTestConn(t)
	conn := NewConnection("viewer", ws)
	hub.Attach(conn)
	hub.Subscribe("recipe-1", conn)

	hub.Detach(conn)
	assert.Zero(t, hub.Broadcast("recipe-1", []byte(`{}`), ""))
}

func TestConnection_SendBackpressure(t *testing.T) {
	ws, _ := dialTestConn(t)
	conn := NewConnection("viewer", ws)

	// Without a running write loop the buffer eventually fills and the
	// connection gives up instead of blocking.
	var sendErr error
	for i := 0; i < 256; i++ {
		if sendErr = conn.Send([]byte(fmt.Sprintf(`{"seq":%d}`, i))); sendErr != nil {
			break
		}
	}
	require.Error(t, sendErr)
	assert.Error(t, conn.Send([]byte(`{}`)))
}
