package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/smartclass/sentinel_backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// LivePayload is pushed to dashboard clients whenever the capture controller
// appends an attendance record.
type LivePayload struct {
	Type   string                  `json:"type"`
	Record models.AttendanceRecord `json:"record"`
}

// LiveHub handles websocket clients watching the live attendance feed.
type LiveHub struct {
	register   chan *liveClient
	unregister chan *liveClient
	broadcast  chan []byte
	clients    map[*liveClient]struct{}
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*liveClient]struct{}),
	}
}

func (h *LiveHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.conn.Close()
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					delete(h.clients, client)
					close(client.send)
					client.conn.Close()
				}
			}
		}
	}
}

// BroadcastRecord pushes one appended record to every connected client.
func (h *LiveHub) BroadcastRecord(rec models.AttendanceRecord) {
	if h == nil {
		return
	}
	data, err := json.Marshal(LivePayload{Type: "attendance_record", Record: rec})
	if err != nil {
		log.Printf("ws: failed to marshal payload: %v", err)
		return
	}
	h.broadcast <- data
}

type liveClient struct {
	hub  *LiveHub
	conn *websocket.Conn
	send chan []byte
}

func newLiveClient(hub *LiveHub, conn *websocket.Conn) *liveClient {
	return &liveClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *liveClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *liveClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
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
