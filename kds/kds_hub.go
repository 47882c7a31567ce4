package kds

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
)

// Views a client can subscribe to.
const (
	ViewAll     = "all"
	ViewKitchen = "kitchen" // order events only
	ViewFloor   = "floor"   // table events only
)

const writeTimeout = 5 * time.Second

// Hub keeps the connected live-board clients and pushes events to them.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> view
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string)}
}

// ValidView reports whether view is a known subscription.
func ValidView(view string) bool {
	switch view {
	case ViewAll, ViewKitchen, ViewFloor:
		return true
	}
	return false
}

// RegisterClient adds a connection subscribed to view.
func (h *Hub) RegisterClient(conn *websocket.Conn, view string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = view
}

// UnregisterClient removes and closes a connection.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish sends the event to every subscribed client. Clients that fail to
// receive are dropped.
func (h *Hub) Publish(_ context.Context, event models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, view := range h.clients {
		if !wants(view, event.Type) {
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("Error sending %s to %s client: %v", event.Type, view, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
	return nil
}

func wants(view, eventType string) bool {
	switch view {
	case ViewKitchen:
		return eventType == models.EventOrderPlaced
	case ViewFloor:
		return eventType == models.EventTableReserved || eventType == models.EventTableReleased
	default:
		return true
	}
}
