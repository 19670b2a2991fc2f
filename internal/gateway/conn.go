package gateway

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Frame is the wire envelope for every event in both directions.
type Frame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// wsConn adapts a websocket connection to registry.Conn. Pushes can come
// from any goroutine (fanout, broadcast), so writes are serialized.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSConn(c *websocket.Conn) *wsConn {
	return &wsConn{conn: c}
}

func (w *wsConn) Push(event string, payload any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(Frame{Type: event, Payload: payload})
}

func (w *wsConn) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}
