package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"canteen-backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is the envelope pushed to every connected client.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

const (
	// a write that cannot finish within this window evicts the client
	writeWait = 10 * time.Second

	// per-client outbound buffer; a client that falls this far behind
	// is dropped rather than allowed to back up the hub
	sendBuffer = 16
)

// client pairs a connection with its outbound queue. Writes happen on a
// dedicated goroutine so the hub never waits on a socket.
type client struct {
	conn *websocket.Conn
	send chan Event
}

func (c *client) writePump() {
	defer c.conn.Close()
	for ev := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(ev); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

// OrderHub fans order lifecycle events out to every connected client
// (admin dashboard, customer tracking pages). Delivery is best effort:
// no replay, a client that connects late re-fetches over HTTP, and a
// client that stops reading is evicted instead of stalling anyone else.
type OrderHub struct {
	clients    map[*client]bool
	broadcast  chan Event
	register   chan *client
	unregister chan *client
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan Event),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run owns the client set; all mutation goes through the channels. The
// broadcast case only queues onto per-client buffers, so a wedged socket
// can never block the loop or the request goroutine that emitted.
func (h *OrderHub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// queue full: the client stopped reading
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *OrderHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ----- services.Notifier -----

func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.broadcast <- Event{Event: "newOrder", Data: o}
}

func (h *OrderHub) OrderStatusUpdated(code, status string, o *entity.Order) {
	h.broadcast <- Event{Event: "orderStatusUpdate", Data: map[string]any{
		"orderId": code,
		"status":  status,
		"order":   o,
	}}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders. Clients only listen; inbound frames are drained
// until the connection drops.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	cl := &client{conn: conn, send: make(chan Event, sendBuffer)}
	h.register <- cl

	go cl.writePump()
	go h.drain(cl)
}

func (h *OrderHub) drain(cl *client) {
	defer func() { h.unregister <- cl }()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
