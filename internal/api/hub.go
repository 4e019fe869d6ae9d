/*
Package api
File: hub.go
Description:
    The WebSocket hub is the real-time presentation boundary. It maintains
    the registry of connected clients and fans simulation frames out to all
    of them. The simulation goroutine pushes JSON frames into Broadcast; the
    hub never touches the World.

    Architecture:
    - Hub: the connection manager.
    - Client: one browser connection with its own outbound queue.
    - ServeWs: upgrades a GET request to a WebSocket.
*/

package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the JSON envelope for every frame sent over the socket.
type Message struct {
	Type    string `json:"type"` // "state_tick", "fuel_empty", "capsule_collected", ...
	Payload any    `json:"payload"`
	Sender  string `json:"sender"`
}

// Client represents a single connected player/browser tab.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // buffered outbound queue
}

// Hub maintains the set of active clients and broadcasts frames to them.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	logger     *zap.Logger

	// Broadcast accepts outbound frames from the simulation bridge.
	Broadcast chan []byte

	// OnMessage, when set, receives every inbound client message (helm
	// intents). Called from the client's read goroutine.
	OnMessage func(data []byte)
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		Broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run owns the client registry. Must run on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("ws client connected", zap.Int("clients", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("ws client disconnected", zap.Int("clients", len(h.clients)))
			}
		case frame := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- frame:
				default:
					// Slow consumer: drop the connection rather than
					// stalling the broadcast path.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs handles websocket requests from the peer.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if c.hub.OnMessage != nil {
			c.hub.OnMessage(data)
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	// Range stops when the hub closes c.send.
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
