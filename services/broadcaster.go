package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	goerrors "errors"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

const defaultLedgerSize = 10_000

// Broadcaster sends outbound events to scoped sets of live connections.
// A failing connection is logged and skipped, the fan-out goes on.
type Broadcaster struct {
	log      *slog.Logger
	registry contract.IRegistry
	mu       sync.Mutex
	// ledger remembers which connections already received a message id
	ledger *lru.Cache[domain.MessageID, map[domain.ConnectionID]struct{}]
}

func NewBroadcaster(log *slog.Logger, registry contract.IRegistry, ledgerSize int) (*Broadcaster, error) {
	if ledgerSize <= 0 {
		ledgerSize = defaultLedgerSize
	}
	ledger, err := lru.New[domain.MessageID, map[domain.ConnectionID]struct{}](ledgerSize)
	if err != nil {
		return nil, err
	}
	return &Broadcaster{log: log, registry: registry, ledger: ledger}, nil
}

// ToConnection sends to one connection and returns the delivery error.
func (b *Broadcaster) ToConnection(conn contract.Connection, e event.Outbound) error {
	err := conn.Send(e)
	if err == nil {
		return nil
	}
	reason := "error"
	switch {
	case goerrors.Is(err, errors.ErrConnectionClosed):
		reason = "closed"
	case goerrors.Is(err, errors.ErrConnectionSaturated):
		reason = "saturated"
	}
	observability.DroppedDeliveries.WithLabelValues(reason).Inc()
	b.log.Warn("Event not delivered",
		"event", e.Event,
		"connection_id", conn.ID(),
		"error", err)
	return err
}

// ToRoom sends to every connection of the room group except the excluded ones.
func (b *Broadcaster) ToRoom(roomID domain.RoomID, e event.Outbound, exclude ...domain.ConnectionID) int {
	return b.send(b.registry.GroupConnections(roomID), e, exclude)
}

// ToUser sends to every live connection of the user.
func (b *Broadcaster) ToUser(userID domain.UserID, e event.Outbound) int {
	return b.send(b.registry.FindByUser(userID), e, nil)
}

// ToAudience sends once to the union of the room groups and the users'
// connections, a connection in several of them receives the event once.
func (b *Broadcaster) ToAudience(e event.Outbound, roomIDs []domain.RoomID, userIDs []domain.UserID) int {
	var conns []contract.Connection
	for _, roomID := range roomIDs {
		conns = append(conns, b.registry.GroupConnections(roomID)...)
	}
	for _, userID := range userIDs {
		conns = append(conns, b.registry.FindByUser(userID)...)
	}
	conns = lo.UniqBy(conns, func(c contract.Connection) domain.ConnectionID { return c.ID() })
	return b.send(conns, e, nil)
}

// ToSubscribed sends to every connection that joined at least one room.
func (b *Broadcaster) ToSubscribed(e event.Outbound) int {
	return b.send(b.registry.SubscribedConnections(), e, nil)
}

// DeliverOnce sends a message event to the room group, skipping connections
// that already received messageID. Excluded connections are recorded as
// served so a retry never reaches them either.
func (b *Broadcaster) DeliverOnce(roomID domain.RoomID, messageID domain.MessageID, e event.Outbound, exclude ...domain.ConnectionID) int {
	conns := b.registry.GroupConnections(roomID)

	b.mu.Lock()
	served, ok := b.ledger.Get(messageID)
	if !ok {
		served = make(map[domain.ConnectionID]struct{})
	}
	targets := lo.Filter(conns, func(c contract.Connection, _ int) bool {
		_, done := served[c.ID()]
		return !done && !lo.Contains(exclude, c.ID())
	})
	for _, connID := range exclude {
		served[connID] = struct{}{}
	}
	b.mu.Unlock()

	sent := 0
	var delivered []domain.ConnectionID
	for _, conn := range targets {
		if b.ToConnection(conn, e) == nil {
			sent++
			delivered = append(delivered, conn.ID())
		}
	}

	b.mu.Lock()
	for _, connID := range delivered {
		served[connID] = struct{}{}
	}
	b.ledger.Add(messageID, served)
	b.mu.Unlock()
	return sent
}

// Delivered reports whether the connection already received messageID.
func (b *Broadcaster) Delivered(messageID domain.MessageID, connID domain.ConnectionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	served, ok := b.ledger.Peek(messageID)
	if !ok {
		return false
	}
	_, done := served[connID]
	return done
}

func (b *Broadcaster) send(conns []contract.Connection, e event.Outbound, exclude []domain.ConnectionID) int {
	sent := 0
	for _, conn := range conns {
		if lo.Contains(exclude, conn.ID()) {
			continue
		}
		if b.ToConnection(conn, e) == nil {
			sent++
		}
	}
	return sent
}
