package ws

import (
	"encoding/json"
	"sync"

	"codexam/internal/model"

	log "github.com/sirupsen/logrus"
)

// MessageType defines the type of monitor message
type MessageType string

const (
	MsgSubmissionRecorded MessageType = "submission_recorded"
)

// Message is the monitor envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans submission events out to connected professor dashboards.
type Hub struct {
	mu    sync.RWMutex
	conns map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one monitor WebSocket connection
type Connection struct {
	Send chan []byte
}

// NewHub creates a new monitor hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = struct{}{}
			h.mu.Unlock()
			log.Debug("monitor connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			log.Debug("monitor disconnected")

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Slow consumer, drop the event
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a monitor connection to the hub.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a monitor connection from the hub.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// SubmissionRecorded broadcasts a submission record to all monitors. It
// implements service.Broadcaster.
func (h *Hub) SubmissionRecorded(rec model.SubmissionRecord) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- &Message{Type: MsgSubmissionRecorded, Payload: payload}:
	default:
		log.Warn("monitor broadcast queue full, dropping event")
	}
}
