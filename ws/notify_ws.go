package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/FEBRIAN80/managmnt-food/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Notification is pushed to the station UI so it can toast the outcome of
// catalog loads and checkouts.
type Notification struct {
	Event   string `json:"event"` // commit_ok | commit_failed | catalog_error
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type subscription struct {
	conn      *websocket.Conn
	cashierID uint
}

// NotifyHub fans notifications out to every connection of a cashier station.
type NotifyHub struct {
	clients    map[uint]map[*websocket.Conn]bool // cashierID -> set of clients
	broadcast  chan push
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type push struct {
	cashierID uint
	note      Notification
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan push),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *NotifyHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.cashierID] == nil {
				h.clients[sub.cashierID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.cashierID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.cashierID][sub.conn]; ok {
				delete(h.clients[sub.cashierID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case p := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[p.cashierID] {
				if err := conn.WriteJSON(p.note); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[p.cashierID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify never blocks the caller's request path on a slow client.
func (h *NotifyHub) Notify(cashierID uint, note Notification) {
	go func() { h.broadcast <- push{cashierID: cashierID, note: note} }()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	cashierID := utils.CurrentUserID(c)
	if cashierID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, cashierID: cashierID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains the connection until the client goes away.
func (h *NotifyHub) keepAlive(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			break
		}
	}
}
