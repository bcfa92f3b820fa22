package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"pulse-backend/internal/models"
)

// streamHub fans new notifications out to connected websocket clients,
// keyed by employee.
type streamHub struct {
	mu    sync.Mutex
	conns map[int64]map[*websocket.Conn]bool
}

// Stream is the global notification hub
var Stream = &streamHub{conns: make(map[int64]map[*websocket.Conn]bool)}

func (h *streamHub) register(employeeID int64, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[employeeID] == nil {
		h.conns[employeeID] = make(map[*websocket.Conn]bool)
	}
	h.conns[employeeID][ws] = true
}

func (h *streamHub) unregister(employeeID int64, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns[employeeID], ws)
	if len(h.conns[employeeID]) == 0 {
		delete(h.conns, employeeID)
	}
}

// Publish pushes a notification to the recipient's open connections.
// Connections that fail to write are dropped.
func (h *streamHub) Publish(n *models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ws := range h.conns[n.EmployeeID] {
		if err := ws.WriteJSON(n); err != nil {
			ws.Close()
			delete(h.conns[n.EmployeeID], ws)
		}
	}
}

// streamNotificationsHandler handles GET /api/notifications/stream. Runs
// behind RequireAuth; browsers pass the token as a query parameter since
// websockets cannot set headers.
func streamNotificationsHandler(c echo.Context) error {
	employee, err := currentEmployee(c)
	if err != nil {
		return serverError(c, "resolve employee error", err)
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	Stream.register(employee.ID, ws)
	defer Stream.unregister(employee.ID, ws)

	// Block until the client goes away; inbound messages are ignored.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}
