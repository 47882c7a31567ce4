package kds

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-system/models"
)

var testUpgrader = websocket.Upgrader{}

// startHubServer registers every incoming websocket with the view given in the query.
func startHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.RegisterClient(conn, r.URL.Query().Get("view"))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.UnregisterClient(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, view string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?view=" + view
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 10*time.Millisecond)
}

func TestHub_PublishRoutesByView(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	kitchen := dial(t, srv, ViewKitchen)
	floor := dial(t, srv, ViewFloor)
	waitForClients(t, hub, 2)

	event := models.Event{ID: "evt-1", Type: models.EventOrderPlaced, Data: map[string]int{"quantity": 5}}
	require.NoError(t, hub.Publish(context.Background(), event))

	_ = kitchen.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := kitchen.ReadMessage()
	require.NoError(t, err)

	var got models.Event
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "evt-1", got.ID)
	assert.Equal(t, models.EventOrderPlaced, got.Type)

	// the floor view must not see order events
	_ = floor.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = floor.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	conn := dial(t, srv, ViewAll)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestWants(t *testing.T) {
	assert.True(t, wants(ViewAll, models.EventTableReserved))
	assert.True(t, wants(ViewKitchen, models.EventOrderPlaced))
	assert.False(t, wants(ViewKitchen, models.EventTableReleased))
	assert.True(t, wants(ViewFloor, models.EventTableReleased))
	assert.False(t, wants(ViewFloor, models.EventOrderPlaced))

	assert.True(t, ValidView(ViewFloor))
	assert.False(t, ValidView("chef"))
}
