package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type echoCommand struct {
	Text string `json:"text" validate:"required,max=8"`
}

func echo(_ context.Context, conn contract.Connection, cmd echoCommand) (contract.Reply, error) {
	return contract.Reply{ID: string(conn.ID()), Result: cmd.Text}, nil
}

func request(conn contract.Connection, name event.Name, ackID string, data string) contract.Request {
	return contract.Request{Conn: conn, Inbound: event.Inbound{Event: name, AckID: ackID, Data: json.RawMessage(data)}}
}

// expectAck captures the payload of the next ack sent to conn.
func expectAck(conn *mocks.MockConnection, ackID string) *event.AckPayload {
	var payload event.AckPayload
	conn.EXPECT().Send(gomock.Any()).DoAndReturn(func(e event.Outbound) error {
		if e.Event == event.Ack && e.AckID == ackID {
			payload = e.Data.(event.AckPayload)
		}
		return nil
	})
	return &payload
}

func newTestRouter(registry *Registry) *Router {
	return NewRouter(logs.GetLoggerFromLevel(slog.LevelError), registry).
		Public("echo", Bind(echo)).
		Route("private-echo", Bind(echo)).
		Route("panic", Bind(func(context.Context, contract.Connection, echoCommand) (contract.Reply, error) {
			panic("boom")
		})).
		Route("conflict", func(context.Context, contract.Request) (contract.Reply, error) {
			return contract.Reply{}, &conflict{existing: "r1"}
		})
}

type conflict struct{ existing domain.RoomID }

func (c *conflict) Error() string      { return "room exists" }
func (c *conflict) Unwrap() error      { return errors.ErrConflict }
func (c *conflict) FailureResult() any { return c.existing }

func TestRouter_AcksSuccess(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()
	router := newTestRouter(NewRegistry())

	ack := expectAck(conn, "1")
	router.Handle(context.Background(), request(conn, "echo", "1", `{"text":"hello"}`))

	req.True(ack.Success)
	req.Equal("c1", ack.ID)
	req.Equal("hello", ack.Result)
}

func TestRouter_NoAckWithoutAckID(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()
	conn.EXPECT().Send(gomock.Any()).Times(0)
	router := newTestRouter(NewRegistry())

	router.Handle(context.Background(), request(conn, "echo", "", `{"text":"hello"}`))
	router.Handle(context.Background(), request(conn, "nope", "", `{}`))
}

func TestRouter_Failures(t *testing.T) {
	tests := []struct {
		name  string
		event event.Name
		data  string
		kind  errors.Kind
	}{
		{name: "unknown event", event: "nope", data: `{}`, kind: errors.KindValidation},
		{name: "malformed payload", event: "echo", data: `{"text":`, kind: errors.KindValidation},
		{name: "missing field", event: "echo", data: `{}`, kind: errors.KindValidation},
		{name: "field too long", event: "echo", data: `{"text":"far too long"}`, kind: errors.KindValidation},
		{name: "not subscribed", event: "private-echo", data: `{"text":"hi"}`, kind: errors.KindValidation},
		{name: "handler panic", event: "panic", data: `{"text":"hi"}`, kind: errors.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			conn := mocks.NewMockConnection(ctrl)
			conn.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()
			registry := NewRegistry()
			if tt.event == "panic" {
				registry.Register("alice", conn)
			}
			router := newTestRouter(registry)

			ack := expectAck(conn, "1")
			router.Handle(context.Background(), request(conn, tt.event, "1", tt.data))

			req.False(ack.Success)
			req.NotNil(ack.Error)
			req.Equal(tt.kind, ack.Error.Kind)
		})
	}
}

func TestRouter_ConflictCarriesExisting(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()
	registry := NewRegistry()
	registry.Register("alice", conn)

	ack := expectAck(conn, "1")
	newTestRouter(registry).Handle(context.Background(), request(conn, "conflict", "1", `null`))

	req.False(ack.Success)
	req.Equal(errors.KindConflict, ack.Error.Kind)
	req.Equal(domain.RoomID("r1"), ack.Result)
}

func TestRouter_SubscribedRoute(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()
	registry := NewRegistry()
	registry.Register("alice", conn)

	ack := expectAck(conn, "2")
	newTestRouter(registry).Handle(context.Background(), request(conn, "private-echo", "2", `{"text":"hi"}`))

	req.True(ack.Success)
	req.Equal("hi", ack.Result)
}
