// Package live pushes recomputed standings to websocket subscribers.
package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub fans messages out to the clients watching each scenario.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*Client]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// Client is one websocket connection bound to a scenario.
type Client struct {
	hub        *Hub
	scenarioID string
	conn       *websocket.Conn
	send       chan []byte
	closeOnce  sync.Once
}

// NewHub creates a hub. allowedOrigins empty means any origin.
func NewHub(allowedOrigins []string, logger *slog.Logger) *Hub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
	}
}

// Publish sends a message to every client of scenarioID. Clients whose
// buffer is full are dropped rather than blocking the caller.
func (h *Hub) Publish(scenarioID, messageType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		h.logger.Error("Marshal live message", "type", messageType, "error", err)
		return
	}

	h.mu.RLock()
	var slow []*Client
	for c := range h.clients[scenarioID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow live client", "scenario", scenarioID)
		h.unregister(c)
	}
}

// CloseScenario disconnects every client of scenarioID.
func (h *Hub) CloseScenario(scenarioID string) {
	h.mu.Lock()
	clients := h.clients[scenarioID]
	delete(h.clients, scenarioID)
	h.mu.Unlock()

	for c := range clients {
		c.closeSend()
	}
}

// Count returns the number of clients watching scenarioID.
func (h *Hub) Count(scenarioID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[scenarioID])
}

// ServeWS upgrades the request and subscribes the connection to
// scenarioID. initial, if non-nil, builds the first frame. It runs after the
// client is registered and before any later Publish reaches it, so the
// client never misses a state published in between. initial runs with the
// hub locked and must not call back into the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, scenarioID string, initial func() *Message) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &Client{
		hub:        h,
		scenarioID: scenarioID,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
	}
	h.register(c, initial)

	go c.writePump()
	go c.readPump()
	return nil
}

func (h *Hub) register(c *Client, initial func() *Message) {
	h.mu.Lock()
	set, ok := h.clients[c.scenarioID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.scenarioID] = set
	}
	set[c] = struct{}{}
	n := len(set)
	if initial != nil {
		if msg := initial(); msg != nil {
			if data, err := json.Marshal(msg); err == nil {
				c.send <- data
			} else {
				h.logger.Error("Marshal live message", "type", msg.Type, "error", err)
			}
		}
	}
	h.mu.Unlock()
	h.logger.Debug("Live client registered", "scenario", c.scenarioID, "clients", n)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if set, ok := h.clients[c.scenarioID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.scenarioID)
		}
	}
	h.mu.Unlock()
	c.closeSend()
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("Live read error", "scenario", c.scenarioID, "error", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Type == "ping" {
			data, _ := json.Marshal(Message{Type: "pong", Payload: "pong"})
			c.hub.mu.RLock()
			_, live := c.hub.clients[c.scenarioID][c]
			if live {
				select {
				case c.send <- data:
				default:
				}
			}
			c.hub.mu.RUnlock()
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
