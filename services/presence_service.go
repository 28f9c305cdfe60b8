package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"log/slog"

	"github.com/pion/webrtc/v4"
)

// PresenceService binds connections to users. Status writes to the store
// are best effort: a failure is logged and never blocks the registry.
type PresenceService struct {
	log         *slog.Logger
	registry    contract.IRegistry
	users       contract.IUserRepository
	rooms       contract.IRoomRepository
	messages    contract.IMessageRepository
	typing      *TypingService
	broadcaster *Broadcaster
	lastMessage func(domain.Room) *event.DeliveredMessage
	iceServers  []webrtc.ICEServer
}

func NewPresenceService(
	log *slog.Logger,
	registry contract.IRegistry,
	users contract.IUserRepository,
	rooms contract.IRoomRepository,
	messages contract.IMessageRepository,
	messageService *MessageService,
	typing *TypingService,
	broadcaster *Broadcaster,
	iceServers []webrtc.ICEServer,
) *PresenceService {
	return &PresenceService{
		log:         log,
		registry:    registry,
		users:       users,
		rooms:       rooms,
		messages:    messages,
		typing:      typing,
		broadcaster: broadcaster,
		lastMessage: messageService.LastMessage,
		iceServers:  iceServers,
	}
}

// Subscribe registers the connection for the user and joins every room of
// the user. A connection opened with a token may only subscribe as the
// token owner.
func (s *PresenceService) Subscribe(_ context.Context, conn contract.Connection, cmd domain.SubscribeCommand) (contract.Reply, error) {
	if authenticated, ok := conn.(contract.Authenticated); ok {
		if owner, has := authenticated.AuthenticatedUser(); has && owner != cmd.UserID {
			return contract.Reply{}, errors.ErrUnauthorized
		}
	}

	registration := s.registry.Register(cmd.UserID, conn)
	if replaced := registration.Replaced; replaced != nil {
		s.log.Info("Connection rebound", "connection_id", conn.ID(), "previous_user_id", replaced.UserID, "user_id", cmd.UserID)
		if registration.ReplacedLast {
			s.goOffline(replaced.UserID)
		}
	}
	if registration.FirstForUser {
		s.setStatus(cmd.UserID, domain.StatusOnline)
	}

	rooms, err := s.rooms.RoomsOf(cmd.UserID)
	if err != nil {
		return contract.Reply{}, err
	}
	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		s.registry.Join(room.ID, conn.ID())
		unseen, err := s.messages.CountUnseen(room.ID, cmd.UserID)
		if err != nil {
			s.log.Warn("Unseen count failed", "room_id", room.ID, "user_id", cmd.UserID, "error", err)
		}
		summaries = append(summaries, RoomSummary{Room: room, Unseen: unseen, LastMessage: s.lastMessage(room)})
	}
	s.log.Info("Connection subscribed", "user_id", cmd.UserID, "connection_id", conn.ID(), "rooms", len(rooms))

	online := s.BroadcastSnapshot()
	return contract.Reply{ID: string(cmd.UserID), Result: SubscribeResult{
		UserID:     cmd.UserID,
		Rooms:      summaries,
		IceServers: s.iceServers,
		Online:     online,
	}}, nil
}

// Disconnect runs for every closed connection, graceful or not.
func (s *PresenceService) Disconnect(_ context.Context, conn contract.Connection, _ struct{}) (contract.Reply, error) {
	entry, last, ok := s.registry.Remove(conn.ID())
	if !ok {
		return contract.Reply{}, nil
	}
	s.log.Info("Connection removed", "user_id", entry.UserID, "connection_id", entry.ConnectionID, "last", last)
	if last {
		s.goOffline(entry.UserID)
	}
	s.BroadcastSnapshot()
	return contract.Reply{ID: string(entry.UserID)}, nil
}

// BroadcastSnapshot sends the online set to every subscribed connection.
func (s *PresenceService) BroadcastSnapshot() []domain.PresenceEntry {
	online := s.registry.Snapshot()
	s.broadcaster.ToSubscribed(event.New(event.PresenceSnapshot, event.Presence{Online: online}))
	return online
}

// goOffline runs once a user has no live connection left.
func (s *PresenceService) goOffline(userID domain.UserID) {
	s.setStatus(userID, domain.StatusOffline)
	s.typing.Clear(userID)
}

func (s *PresenceService) setStatus(userID domain.UserID, status domain.UserStatus) {
	if err := s.users.SetStatus(userID, status); err != nil {
		s.log.Warn("User status not persisted", "user_id", userID, "status", status, "error", err)
	}
}
