package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsSink adapts a gorilla websocket connection to hub.Sink: Send queues a
// payload for the write pump rather than writing directly, so a slow reader
// never blocks the broadcaster. closed guards against sending on the
// channel after readUntilClose has torn the pump down.
type wsSink struct {
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	closed bool
}

func newWSSink(conn *websocket.Conn) *wsSink {
	s := &wsSink{conn: conn, send: make(chan []byte, 16)}
	go s.writePump()
	return s
}

// Send queues payload for delivery. It never blocks: a sink whose buffer is
// full, or already torn down, is treated as dead and its error bubbles up
// so the hub prunes it.
func (s *wsSink) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSinkClosed
	}
	select {
	case s.send <- payload:
		return nil
	default:
		return errSinkBufferFull
	}
}

// readUntilClose blocks until the client disconnects or sends a close
// frame, discarding any inbound message — this route is server-push only.
func (s *wsSink) readUntilClose() {
	defer s.conn.Close()
	s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.mu.Lock()
			s.closed = true
			s.mu.Unlock()
			close(s.send)
			return
		}
	}
}

func (s *wsSink) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type sinkError string

func (e sinkError) Error() string { return string(e) }

const errSinkBufferFull = sinkError("websocket send buffer full")
const errSinkClosed = sinkError("websocket connection closed")
