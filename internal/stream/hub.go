// Package stream fans per-step projection frames out to renderer clients
// over websockets. The simulation itself never crosses the wire: clients
// receive only the visual instance records, and every frame fully replaces
// the previous one.
package stream

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/halninethousand/3d-cell-automata/internal/core"
)

// Frame is one step's complete projection.
type Frame struct {
	Step      int             `json:"step"`
	Live      int             `json:"live"`
	Instances []core.Instance `json:"instances"`
}

// Conn is the connection surface the hub writes to. *websocket.Conn
// satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)

// subscriber pairs a connection with a write mutex, since websocket
// connections allow only one concurrent writer.
type subscriber struct {
	conn Conn
	mu   sync.Mutex
}

func (s *subscriber) send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub owns the set of subscribed renderer connections and the most recent
// frame, which is replayed to clients as they attach.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]*subscriber
	nextID      atomic.Uint64
	last        []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[uint64]*subscriber)}
}

// Subscribe registers a connection and immediately sends it the latest
// frame, if any. It returns the id to pass to Unsubscribe.
func (h *Hub) Subscribe(conn Conn) uint64 {
	id := h.nextID.Add(1)
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[id] = sub
	last := h.last
	h.mu.Unlock()

	if last != nil {
		if err := sub.send(last); err != nil {
			h.Unsubscribe(id)
		}
	}
	return id
}

// Unsubscribe removes and closes a subscriber. Unknown ids are ignored.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()

	if ok {
		sub.conn.Close()
	}
}

// SubscriberCount returns the number of attached renderers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Broadcast encodes the frame once and sends the identical payload to every
// subscriber. Connections whose write fails are dropped.
func (h *Hub) Broadcast(frame Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("stream: encode frame: %w", err)
	}

	h.mu.Lock()
	h.last = payload
	subs := make(map[uint64]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.send(payload); err != nil {
			h.Unsubscribe(id)
		}
	}
	return nil
}
