// Package watch broadcasts interpreter frames to websocket observers.
package watch

import (
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Frame is a rendered snapshot of the interpreter state.
type Frame struct {
	Step      int    `json:"step"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
	Grid      string `json:"grid"`
	Stack     string `json:"stack"`
	Output    string `json:"output"`
	Done      bool   `json:"done"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte
}

// readPump drains the connection until it closes. Observers never send
// anything meaningful.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.Unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("watch: %v", err)
			}
			return
		}
	}
}

// writePump pumps frames from the hub to the websocket connection.
// It is the only writer of the connection.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("watch: write error, closing connection: %v", err)
			return
		}
	}

	// The hub closed the channel.
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// Hub maintains the set of active clients and broadcasts frames to them.
type Hub struct {
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	clients map[*Client]bool
	count   atomic.Int32
	quit    chan struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		quit:       make(chan struct{}),
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Run is the hub's message loop. It returns once Close is called.
func (h *Hub) Run() {
	defer func() {
		for client := range h.clients {
			delete(h.clients, client)
			close(client.send)
		}
		h.count.Store(0)
	}()

	for {
		select {
		case <-h.quit:
			return
		case client := <-h.Register:
			h.clients[client] = true
			h.count.Store(int32(len(h.clients)))
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.count.Store(int32(len(h.clients)))
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop the frame.
				}
			}
		}
	}
}

// Close stops the message loop.
func (h *Hub) Close() {
	close(h.quit)
}

// Publish queues a frame for all clients. Frames are dropped if the hub
// is backlogged.
func (h *Hub) Publish(frame Frame) (err error) {
	message, err := json.Marshal(frame)
	if err != nil {
		return
	}

	select {
	case h.Broadcast <- message:
	default:
	}

	return
}

// ServeHTTP upgrades the request to a websocket connection and registers
// a new Client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("watch: upgrade: %v", err)
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256)}

	select {
	case h.Register <- client:
	case <-h.quit:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
