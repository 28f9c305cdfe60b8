package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/infrastructure/storage"
	"chat-relay/runtime"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// fakeConn records every event sent to it.
type fakeConn struct {
	mu     sync.Mutex
	id     domain.ConnectionID
	events []event.Outbound
	closed bool
}

func newConn(id string) *fakeConn {
	return &fakeConn{id: domain.ConnectionID(id)}
}

func (c *fakeConn) ID() domain.ConnectionID { return c.id }

func (c *fakeConn) Send(e event.Outbound) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrConnectionClosed
	}
	c.events = append(c.events, e)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Named returns the events of the given name, acks excluded.
func (c *fakeConn) Named(name event.Name) []event.Outbound {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.Filter(c.events, func(e event.Outbound, _ int) bool { return e.Event == name })
}

// LastAck returns the payload of the ack answering ackID.
func (c *fakeConn) LastAck(t *testing.T, ackID string) event.AckPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.events) - 1; i >= 0; i-- {
		if c.events[i].Event == event.Ack && c.events[i].AckID == ackID {
			payload, ok := c.events[i].Data.(event.AckPayload)
			require.True(t, ok)
			return payload
		}
	}
	require.Failf(t, "ack not found", "ackID=%s", ackID)
	return event.AckPayload{}
}

func (c *fakeConn) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}

type harness struct {
	t        *testing.T
	db       *badger.DB
	registry *runtime.Registry
	users    *storage.UserRepository
	rooms    *storage.RoomRepository
	messages *storage.MessageRepository
	calls    *storage.CallRepository
	services *Services
	router   *runtime.Router
	acks     int
}

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	db := setupTestDB(t)
	h := &harness{
		t:        t,
		db:       db,
		registry: runtime.NewRegistry(),
		users:    storage.NewUserRepository(db),
		rooms:    storage.NewRoomRepository(db, log),
		messages: storage.NewMessageRepository(db, log),
		calls:    storage.NewCallRepository(db),
	}
	svc, err := New(Dependencies{
		Log:        log,
		Registry:   h.registry,
		Typing:     runtime.NewTypingSet(),
		Users:      h.users,
		Rooms:      h.rooms,
		Messages:   h.messages,
		Calls:      h.calls,
		LedgerSize: 128,
	})
	require.NoError(t, err)
	h.services = svc
	h.router = svc.Routes(runtime.NewRouter(log, h.registry))

	for _, id := range []domain.UserID{"alice", "bob", "carol"} {
		require.NoError(t, h.users.Save(domain.User{ID: id, Name: string(id), Username: string(id), Status: domain.StatusOffline}))
	}
	return h
}

// recorder is a test connection that keeps what it was sent.
type recorder interface {
	contract.Connection
	LastAck(t *testing.T, ackID string) event.AckPayload
}

// emit routes one inbound event and returns its ack.
func (h *harness) emit(conn recorder, name event.Name, data any) event.AckPayload {
	h.t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(h.t, err)
	h.acks++
	ackID := fmt.Sprintf("%s-%d", name, h.acks)
	h.router.Handle(context.Background(), contract.Request{
		Conn:    conn,
		Inbound: event.Inbound{Event: name, AckID: ackID, Data: raw},
	})
	return conn.LastAck(h.t, ackID)
}

func (h *harness) subscribe(conn *fakeConn, userID domain.UserID) {
	h.t.Helper()
	ack := h.emit(conn, event.Subscribe, domain.SubscribeCommand{UserID: userID})
	require.True(h.t, ack.Success, "subscribe failed: %+v", ack.Error)
}

// privateRoom creates a persisted private room between alice and bob.
func (h *harness) privateRoom(conn *fakeConn) domain.Room {
	h.t.Helper()
	ack := h.emit(conn, event.CreateRoom, domain.CreateRoomCommand{Room: domain.RoomSpec{
		Name:         "alice-bob",
		Type:         domain.RoomPrivate,
		Participants: []domain.UserID{"alice", "bob"},
	}})
	require.True(h.t, ack.Success, "create-room failed: %+v", ack.Error)
	room, ok := ack.Result.(domain.Room)
	require.True(h.t, ok)
	return room
}
