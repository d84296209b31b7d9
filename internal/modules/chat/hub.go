package chat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 64 * 1024
)

// Event is the wire format in both directions. Clients emit join-room,
// leave-room and send-message; the hub emits receive-message. Room keys are
// booking-<id>.
type Event struct {
	Type    string          `json:"type"`
	Room    string          `json:"room,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	EventJoinRoom    = "join-room"
	EventLeaveRoom   = "leave-room"
	EventSendMessage = "send-message"
	EventRecvMessage = "receive-message"
)

// connection is a single websocket client with its room subscriptions.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
	rooms  map[string]bool
}

// Hub is the room-keyed broadcast relay. Membership is process-local and
// lost on disconnect; clients rejoin after reconnecting. Delivery is
// fire-and-forget: the persisted chat log is the source of truth and the hub
// is only a best-effort accelerant, with no delivery guarantee, no ordering
// across independent publishers and no replay.
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]bool
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*connection]bool),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connections[c] {
		delete(h.connections, c)
		close(c.send)
	}
}

func (h *Hub) join(c *connection, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.rooms[room] = true
}

func (h *Hub) leave(c *connection, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(c.rooms, room)
}

// Broadcast sends an event to every connection currently joined to the room,
// the publisher included; the sender's UI reconciles duplicates by message
// id. Slow clients are skipped rather than back-pressuring the room.
func (h *Hub) Broadcast(room string, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if c.rooms[room] {
			select {
			case c.send <- data:
			default:
				// Client too slow — skip
			}
		}
	}
}

// RoomSize reports current membership, used by tests and the health surface.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.connections {
		if c.rooms[room] {
			n++
		}
	}
	return n
}

// ServeConn registers a websocket connection and runs its read/write loops.
// Blocks until the client disconnects.
func (h *Hub) ServeConn(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 256),
		rooms:  make(map[string]bool),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var event Event
		if err := json.Unmarshal(msg, &event); err != nil {
			continue
		}

		switch event.Type {
		case EventJoinRoom:
			h.join(c, event.Room)
		case EventLeaveRoom:
			h.leave(c, event.Room)
		case EventSendMessage:
			// Re-emit the payload verbatim to the whole room. The hub never
			// touches the database; persistence happens over HTTP first.
			h.Broadcast(event.Room, &Event{
				Type:    EventRecvMessage,
				Room:    event.Room,
				Payload: event.Payload,
			})
		}
	}
}

func (h *Hub) writePump(c *connection) {
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
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
