package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/FahadAljabr/arms/internal/application"
	"github.com/FahadAljabr/arms/pkg/readiness"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin checks belong in front of this in production
	},
}

// DashboardHandler pushes recomputed alert sets to connected dashboard
// clients over WebSocket
type DashboardHandler struct {
	dashboardService *application.DashboardService
	interval         time.Duration
	connections      map[uuid.UUID]*websocket.Conn
	connectionsMu    sync.Mutex
}

// NewDashboardHandler creates a new DashboardHandler. interval controls how
// often the alert set is recomputed and broadcast.
func NewDashboardHandler(dashboardService *application.DashboardService, interval time.Duration) *DashboardHandler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &DashboardHandler{
		dashboardService: dashboardService,
		interval:         interval,
		connections:      make(map[uuid.UUID]*websocket.Conn),
	}
}

// HandleConnection handles a WebSocket connection from a dashboard client
func (h *DashboardHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}

	clientID := uuid.New()
	h.connectionsMu.Lock()
	h.connections[clientID] = conn
	h.connectionsMu.Unlock()

	// Push the current state immediately so the client does not wait for
	// the next broadcast tick
	if alerts, err := h.dashboardService.Alerts(r.Context()); err == nil {
		h.send(clientID, conn, alerts)
	}

	go h.readLoop(clientID, conn)
}

// Run broadcasts the alert set on every tick until the context is cancelled
func (h *DashboardHandler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			h.broadcast(ctx)
		}
	}
}

// readLoop drains incoming messages so close frames are noticed; dashboard
// clients are receive-only
func (h *DashboardHandler) readLoop(clientID uuid.UUID, conn *websocket.Conn) {
	defer func() {
		conn.Close()

		h.connectionsMu.Lock()
		delete(h.connections, clientID)
		h.connectionsMu.Unlock()
	}()

	conn.SetPingHandler(func(string) error {
		return conn.WriteControl(websocket.PongMessage, []byte{}, time.Now().Add(time.Second))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
	}
}

func (h *DashboardHandler) broadcast(ctx context.Context) {
	alerts, err := h.dashboardService.Alerts(ctx)
	if err != nil {
		log.Printf("Error computing alerts: %v", err)
		return
	}

	h.connectionsMu.Lock()
	conns := make(map[uuid.UUID]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.connectionsMu.Unlock()

	for id, conn := range conns {
		h.send(id, conn, alerts)
	}
}

func (h *DashboardHandler) send(clientID uuid.UUID, conn *websocket.Conn, alerts readiness.AlertSet) {
	message := struct {
		Type   string             `json:"type"`
		Time   int64              `json:"time"`
		Alerts readiness.AlertSet `json:"alerts"`
	}{
		Type:   "alerts",
		Time:   time.Now().Unix(),
		Alerts: alerts,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("Error sending message to %s: %v", clientID, err)
	}
}

func (h *DashboardHandler) closeAll() {
	h.connectionsMu.Lock()
	defer h.connectionsMu.Unlock()

	for id, conn := range h.connections {
		conn.Close()
		delete(h.connections, id)
	}
}
