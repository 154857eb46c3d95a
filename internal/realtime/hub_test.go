// filepath: internal/realtime/hub_test.go
package realtime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"wardbulletin/internal/realtime"
)

func dialHub(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	return conn
}

func waitForClients(t *testing.T, hub *realtime.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Expected %d clients, have %d", want, hub.ClientCount())
}

func TestHubBroadcast(t *testing.T) {
	hub := realtime.NewHub()
	ts := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	defer ts.Close()

	c1 := dialHub(t, ts)
	defer c1.Close()
	c2 := dialHub(t, ts)
	defer c2.Close()
	waitForClients(t, hub, 2)

	hub.Broadcast(realtime.Message{
		Type:  realtime.TypeHymnsUpdated,
		Hymns: map[string]string{"1001": "Come Thou Fount"},
	})

	for _, conn := range []*websocket.Conn{c1, c2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		assert.NoError(t, err)

		var msg map[string]interface{}
		assert.NoError(t, json.Unmarshal(payload, &msg))
		assert.Equal(t, "HYMNS_UPDATED", msg["type"])
		assert.Contains(t, msg, "hymns")
		// Empty payload fields stay off the wire.
		assert.NotContains(t, msg, "nameGroups")
		assert.NotContains(t, msg, "date")
	}
}

func TestHubDisconnect(t *testing.T) {
	hub := realtime.NewHub()
	ts := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	defer ts.Close()

	conn := dialHub(t, ts)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Broadcasting with no clients is a no-op.
	hub.Broadcast(realtime.Message{Type: realtime.TypeUserRemoved, UserID: 7})
}

func TestHubClose(t *testing.T) {
	hub := realtime.NewHub()
	ts := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	defer ts.Close()

	conn := dialHub(t, ts)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Close()
	assert.Equal(t, 0, hub.ClientCount())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "Closed hub should drop the connection")
}
