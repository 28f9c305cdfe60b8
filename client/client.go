// Package client speaks the relay protocol over a WebSocket. It is used by
// the command line client and by the integration tests.
package client

import (
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Envelope is an outbound event as received, data left raw.
type Envelope struct {
	Event event.Name      `json:"event"`
	AckID string          `json:"ackId,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Ack is the decoded answer to a request.
type Ack struct {
	Success bool            `json:"success"`
	ID      string          `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *errors.Failure `json:"error,omitempty"`
}

// Decode unmarshals the ack result into v.
func (a Ack) Decode(v any) error {
	return json.Unmarshal(a.Result, v)
}

type Client struct {
	socket  *websocket.Conn
	writeMu sync.Mutex
	seq     atomic.Int64

	mu      sync.Mutex
	pending map[string]chan Ack

	events chan Envelope
	done   chan struct{}
	err    error
}

// Dial opens the socket. header may carry an Authorization bearer token.
func Dial(ctx context.Context, url string, header http.Header) (*Client, error) {
	socket, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := &Client{
		socket:  socket,
		pending: make(map[string]chan Ack),
		events:  make(chan Envelope, 1024),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Emit sends an event without waiting for an answer.
func (c *Client) Emit(name event.Name, data any) error {
	return c.write(name, "", data)
}

// Request sends an event with an ack id and waits for its ack.
func (c *Client) Request(ctx context.Context, name event.Name, data any) (Ack, error) {
	ackID := fmt.Sprintf("%d", c.seq.Add(1))
	answer := make(chan Ack, 1)
	c.mu.Lock()
	c.pending[ackID] = answer
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, ackID)
		c.mu.Unlock()
	}()

	if err := c.write(name, ackID, data); err != nil {
		return Ack{}, err
	}
	select {
	case ack := <-answer:
		return ack, nil
	case <-c.done:
		return Ack{}, c.closedErr()
	case <-ctx.Done():
		return Ack{}, ctx.Err()
	}
}

// Next returns the next non-ack event.
func (c *Client) Next(ctx context.Context) (Envelope, error) {
	select {
	case e := <-c.events:
		return e, nil
	case <-c.done:
		return Envelope{}, c.closedErr()
	case <-ctx.Done():
		return Envelope{}, ctx.Err()
	}
}

// NextOf skips events until one named name arrives.
func (c *Client) NextOf(ctx context.Context, name event.Name) (Envelope, error) {
	for {
		e, err := c.Next(ctx)
		if err != nil || e.Event == name {
			return e, err
		}
	}
}

func (c *Client) Close() error {
	c.writeMu.Lock()
	_ = c.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	return c.socket.Close()
}

func (c *Client) write(name event.Name, ackID string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.socket.WriteJSON(Envelope{Event: name, AckID: ackID, Data: raw})
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		var e Envelope
		if err := c.socket.ReadJSON(&e); err != nil {
			c.err = err
			return
		}
		if e.Event != event.Ack {
			c.events <- e
			continue
		}
		var ack Ack
		if err := json.Unmarshal(e.Data, &ack); err != nil {
			continue
		}
		c.mu.Lock()
		answer, ok := c.pending[e.AckID]
		c.mu.Unlock()
		if ok {
			answer <- ack
		}
	}
}

func (c *Client) closedErr() error {
	if c.err != nil {
		return fmt.Errorf("connection closed: %w", c.err)
	}
	return fmt.Errorf("connection closed")
}
