package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/yourname/rps-arbiter/pkg/types"
)

// Hub fans match events out to websocket spectators. Spectators only listen;
// player moves still travel over UDP.
type Hub struct {
	clients   map[*websocket.Conn]bool
	register  chan *websocket.Conn
	broadcast chan types.Event
	upgrade   websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients:   map[*websocket.Conn]bool{},
		register:  make(chan *websocket.Conn),
		broadcast: make(chan types.Event, 64),
		upgrade:   websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case ev := <-h.broadcast:
			for c := range h.clients {
				if err := c.WriteJSON(ev); err != nil {
					log.Printf("ws write err: %v", err)
					c.Close()
					delete(h.clients, c)
				}
			}
		}
	}
}

// Broadcast never blocks the caller: spectators are best-effort, so when the
// buffer is full the event is dropped.
func (h *Hub) Broadcast(ev types.Event) {
	select {
	case h.broadcast <- ev:
	default:
	}
}

func ServeWS(h *Hub, w http.ResponseWriter, r *http.Request) {
	c, err := h.upgrade.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	h.register <- c
}
