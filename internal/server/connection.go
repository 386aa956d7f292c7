package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

// session is what the game side needs from a client connection: a way to
// push messages and a stream of responses. Tests substitute a channel pair.
type session interface {
	Send(msg *Message) error
	Receive() <-chan *Message
	Done() <-chan struct{}
}

// Connection wraps one websocket client. A read pump feeds inbound messages
// to Receive; writes are serialized through the send channel.
type Connection struct {
	ws     *websocket.Conn
	logger *log.Logger
	send   chan *Message
	recv   chan *Message
	done   chan struct{}
	once   sync.Once
}

// NewConnection wraps an upgraded websocket.
func NewConnection(ws *websocket.Conn, logger *log.Logger) *Connection {
	return &Connection{
		ws:     ws,
		logger: logger.WithPrefix("conn"),
		send:   make(chan *Message, 16),
		recv:   make(chan *Message, 16),
		done:   make(chan struct{}),
	}
}

// Start launches the read and write pumps.
func (c *Connection) Start() {
	go c.readPump()
	go c.writePump()
}

// Send queues a message for the client. It fails once the connection is
// closed.
func (c *Connection) Send(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.done:
		return websocket.ErrCloseSent
	}
}

// Receive returns the stream of messages from the client.
func (c *Connection) Receive() <-chan *Message {
	return c.recv
}

// Done is closed when the connection is gone.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Close tears the connection down. Safe to call more than once.
func (c *Connection) Close() {
	c.once.Do(func() {
		close(c.done)
		if err := c.ws.Close(); err != nil {
			c.logger.Debug("close websocket", "err", err)
		}
	})
}

func (c *Connection) readPump() {
	defer c.Close()
	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("read", "err", err)
			}
			return
		}
		select {
		case c.recv <- &msg:
		case <-c.done:
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(msg); err != nil {
				c.logger.Debug("write", "err", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
