// Package ws feeds the admin back-office a live stream of store events:
// orders placed, statuses changed, catalog edits.
package ws

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
)

// Hub fans events out to every connected client. All client bookkeeping
// happens on the Run goroutine, so no locking is needed.
type Hub struct {
	clients   map[*websocket.Conn]bool
	join      chan *websocket.Conn
	leave     chan *websocket.Conn
	broadcast chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		join:      make(chan *websocket.Conn),
		leave:     make(chan *websocket.Conn),
		broadcast: make(chan []byte, 16),
	}
}

// Join registers a connection until Leave is called for it.
func (h *Hub) Join(conn *websocket.Conn) { h.join <- conn }

func (h *Hub) Leave(conn *websocket.Conn) { h.leave <- conn }

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.join:
			h.clients[conn] = true
			log.Printf("ws client connected (%d online)", len(h.clients))

		case conn := <-h.leave:
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}

		case msg := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// publish marshals and queues an event. The feed is advisory: a nil hub
// and marshal failures drop the event silently.
func (h *Hub) publish(event interface{}) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.broadcast <- msg
}
