package websocket

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	_ contract.Connection    = (*Connection)(nil)
	_ contract.Authenticated = (*Connection)(nil)
)

// Config bounds one client socket.
type Config struct {
	BufferSize     int
	WriteTimeout   time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
}

// pingPeriod must stay below PongWait so a healthy peer never times out.
func (c Config) pingPeriod() time.Duration {
	return c.PongWait * 9 / 10
}

// Connection wraps a gorilla socket with a bounded outbound queue. One read
// pump feeds the event loop, one write pump owns every write to the socket.
type Connection struct {
	id        domain.ConnectionID
	owner     domain.UserID
	socket    *websocket.Conn
	log       *slog.Logger
	cfg       Config
	send      chan event.Outbound
	done      chan struct{}
	closeOnce sync.Once
}

func NewConnection(log *slog.Logger, id domain.ConnectionID, owner domain.UserID, socket *websocket.Conn, cfg Config) *Connection {
	return &Connection{
		id:     id,
		owner:  owner,
		socket: socket,
		log:    log.With("connection_id", id),
		cfg:    cfg,
		send:   make(chan event.Outbound, cfg.BufferSize),
		done:   make(chan struct{}),
	}
}

func (c *Connection) ID() domain.ConnectionID { return c.id }

// AuthenticatedUser is the token owner, if the socket was opened with one.
func (c *Connection) AuthenticatedUser() (domain.UserID, bool) {
	return c.owner, c.owner != ""
}

// Send never blocks. A slow consumer loses events instead of stalling the
// event loop.
func (c *Connection) Send(e event.Outbound) error {
	select {
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case c.send <- e:
		return nil
	default:
		return errors.ErrConnectionSaturated
	}
}

// Close is idempotent. The write pump sends the close frame and releases
// the socket.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// Serve blocks until the socket is gone, either side having closed it.
func (c *Connection) Serve(ctx context.Context, submitter contract.ISubmitter) {
	written := make(chan struct{})
	go func() {
		defer close(written)
		c.writePump()
	}()
	c.readPump(ctx, submitter)
	_ = c.Close()
	<-written
}

func (c *Connection) readPump(ctx context.Context, submitter contract.ISubmitter) {
	c.socket.SetReadLimit(c.cfg.MaxMessageSize)
	_ = c.socket.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.socket.SetPongHandler(func(string) error {
		return c.socket.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		_, raw, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("Socket closed unexpectedly", "error", err)
			}
			return
		}

		var inbound event.Inbound
		if err := json.Unmarshal(raw, &inbound); err != nil || inbound.Event == "" {
			c.log.Debug("Envelope dropped", "size", len(raw), "error", err)
			continue
		}
		if err := submitter.Submit(ctx, contract.Request{Conn: c, Inbound: inbound}); err != nil {
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.cfg.pingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.Close()
		_ = c.socket.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.socket.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.cfg.WriteTimeout))
			return
		case e := <-c.send:
			_ = c.socket.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.socket.WriteJSON(e); err != nil {
				c.log.Warn("Write failed", "event", e.Event, "error", err)
				return
			}
		case <-ticker.C:
			if err := c.socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.cfg.WriteTimeout)); err != nil {
				c.log.Debug("Ping failed", "error", err)
				return
			}
		}
	}
}
