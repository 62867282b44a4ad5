package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/zeusync/rpsarena/internal/core/observability/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Viewers are served from anywhere; the stream is read-only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(conn *websocket.Conn, buffer int) *client {
	return &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

// enqueue reports false when the client's buffer is full or it is closed.
func (c *client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.Error(err))
		return
	}

	c := newClient(conn, s.cfg.SendBuffer)
	s.add(c)
	s.logger.Debug("viewer connected", log.String("client", c.id), log.String("remote", conn.RemoteAddr().String()))

	go s.writePump(c)
	s.readPump(c)
}

// readPump discards inbound frames and notices disconnects.
func (s *Server) readPump(c *client) {
	defer s.remove(c)
	c.conn.SetReadLimit(1024)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("viewer read failed", log.String("client", c.id), log.Error(err))
			}
			return
		}
	}
}

func (s *Server) writePump(c *client) {
	defer s.remove(c)
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			if err := c.write(payload, s.cfg.WriteTimeout); err != nil {
				s.logger.Debug("viewer write failed", log.String("client", c.id), log.Error(err))
				return
			}
		}
	}
}

func (c *client) write(payload []byte, timeout time.Duration) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return nil
}
