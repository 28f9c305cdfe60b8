package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MessageService owns the message lifecycle: posting with tempID
// idempotence, edits, pins, seen markers, deletions and voice plays.
type MessageService struct {
	log         *slog.Logger
	messages    contract.IMessageRepository
	rooms       contract.IRoomRepository
	users       contract.IUserRepository
	broadcaster *Broadcaster
	moderator   contract.IModerator
	now         func() time.Time
}

// NewMessageService accepts a nil moderator when moderation is disabled.
func NewMessageService(
	log *slog.Logger,
	messages contract.IMessageRepository,
	rooms contract.IRoomRepository,
	users contract.IUserRepository,
	broadcaster *Broadcaster,
	moderator contract.IModerator,
) *MessageService {
	return &MessageService{
		log:         log,
		messages:    messages,
		rooms:       rooms,
		users:       users,
		broadcaster: broadcaster,
		moderator:   moderator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *MessageService) Send(_ context.Context, conn contract.Connection, cmd domain.SendMessageCommand) (contract.Reply, error) {
	existing, found, err := s.messages.GetByTempID(cmd.TempID)
	if err != nil {
		return contract.Reply{}, err
	}
	if found {
		s.log.Debug("Message retried", "temp_id", cmd.TempID, "message_id", existing.ID, "deleted", existing.Deleted)
		observability.MessageRetries.Inc()
		return s.replay(conn, existing), nil
	}

	msg := domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		TempID:    cmd.TempID,
		Sender:    cmd.Sender,
		RoomID:    cmd.RoomID,
		Body:      s.censor(cmd.Body),
		SeenBy:    []domain.UserID{},
		HideFor:   []domain.UserID{},
		Replies:   []domain.MessageID{},
		CreatedAt: s.now(),
		Voice:     cmd.Voice,
	}
	if cmd.ReplyTo != nil {
		msg.ReplyToID = cmd.ReplyTo.MessageID
		msg.ReplyPreview = cmd.ReplyTo.Preview
	}
	if msg.Voice != nil {
		msg.Voice.PlayedBy = []domain.VoicePlay{}
	}
	if cmd.File != nil {
		file := domain.ClassifyFile(*cmd.File)
		msg.File = &file
	}

	stored, created, err := s.messages.Post(msg)
	if err != nil {
		return contract.Reply{}, err
	}
	if !created {
		observability.MessageRetries.Inc()
		return s.replay(conn, stored), nil
	}
	observability.MessagesPosted.Inc()
	return s.publish(conn, stored), nil
}

// replay answers a retried tempID. A message deleted for everyone since is
// not delivered again, the sender only gets its id back.
func (s *MessageService) replay(conn contract.Connection, msg domain.Message) contract.Reply {
	if !msg.Deleted {
		return s.publish(conn, msg)
	}
	_ = s.broadcaster.ToConnection(conn, event.New(event.MessageIDUpdate, event.MessageIDUpdated{
		TempID: msg.TempID,
		ID:     msg.ID,
	}))
	return contract.Reply{ID: string(msg.ID), Result: msg}
}

// publish fans a stored message out. It is safe to call again for the same
// message, connections that already received it are skipped.
func (s *MessageService) publish(conn contract.Connection, msg domain.Message) contract.Reply {
	delivered := s.deliverable(msg)
	s.broadcaster.DeliverOnce(msg.RoomID, msg.ID, event.New(event.MessageDelivered, delivered), conn.ID())
	s.broadcaster.ToRoom(msg.RoomID, event.New(event.LastMessageUpdate, event.LastMessage{
		RoomID:  msg.RoomID,
		Message: &delivered,
	}))
	if msg.TempID != "" {
		_ = s.broadcaster.ToConnection(conn, event.New(event.MessageIDUpdate, event.MessageIDUpdated{
			TempID: msg.TempID,
			ID:     msg.ID,
		}))
	}
	return contract.Reply{ID: string(msg.ID), Result: msg}
}

// PostSystem persists a message produced by the coordinator itself, like a
// call summary, and delivers it to the whole room.
func (s *MessageService) PostSystem(roomID domain.RoomID, sender domain.UserID, body string, call *domain.CallInfo) (domain.Message, error) {
	msg := domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		Sender:    sender,
		RoomID:    roomID,
		Body:      body,
		SeenBy:    []domain.UserID{},
		HideFor:   []domain.UserID{},
		Replies:   []domain.MessageID{},
		CreatedAt: s.now(),
		Call:      call,
	}
	stored, _, err := s.messages.Post(msg)
	if err != nil {
		return domain.Message{}, err
	}
	observability.MessagesPosted.Inc()
	delivered := s.deliverable(stored)
	s.broadcaster.DeliverOnce(roomID, stored.ID, event.New(event.MessageDelivered, delivered))
	s.broadcaster.ToRoom(roomID, event.New(event.LastMessageUpdate, event.LastMessage{RoomID: roomID, Message: &delivered}))
	return stored, nil
}

// BuildFirstMessage prepares the optional message created with a room.
func (s *MessageService) BuildFirstMessage(roomID domain.RoomID, first domain.FirstMessage) domain.Message {
	return domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		TempID:    first.TempID,
		Sender:    first.Sender,
		RoomID:    roomID,
		Body:      s.censor(first.Body),
		SeenBy:    []domain.UserID{},
		HideFor:   []domain.UserID{},
		Replies:   []domain.MessageID{},
		CreatedAt: s.now(),
	}
}

func (s *MessageService) Edit(_ context.Context, _ contract.Connection, cmd domain.EditMessageCommand) (contract.Reply, error) {
	body := s.censor(cmd.Body)
	msg, changed, err := s.messages.Mutate(cmd.MessageID, func(m *domain.Message) (bool, error) {
		if err := belongsTo(m, cmd.RoomID); err != nil {
			return false, err
		}
		if m.Body == body {
			return false, nil
		}
		m.Edit(body)
		return true, nil
	})
	if err != nil {
		return contract.Reply{}, err
	}
	if changed {
		s.broadcaster.ToRoom(msg.RoomID, event.New(event.MessageEdited, event.MessageChanged{
			MessageID: msg.ID,
			RoomID:    msg.RoomID,
			Body:      msg.Body,
		}))
		s.refreshLastMessage(msg)
	}
	return contract.Reply{ID: string(msg.ID), Result: msg}, nil
}

func (s *MessageService) Pin(_ context.Context, _ contract.Connection, cmd domain.PinMessageCommand) (contract.Reply, error) {
	at := s.now()
	msg, _, err := s.messages.Mutate(cmd.MessageID, func(m *domain.Message) (bool, error) {
		if err := belongsTo(m, cmd.RoomID); err != nil {
			return false, err
		}
		m.TogglePin(at)
		return true, nil
	})
	if err != nil {
		return contract.Reply{}, err
	}
	pinned := msg.PinnedAt != nil
	s.broadcaster.ToRoom(msg.RoomID, event.New(event.MessagePinned, event.MessageChanged{
		MessageID: msg.ID,
		RoomID:    msg.RoomID,
		PinnedAt:  msg.PinnedAt,
		Pinned:    &pinned,
	}))
	s.refreshLastMessage(msg)
	return contract.Reply{ID: string(msg.ID), Result: msg}, nil
}

func (s *MessageService) MarkSeen(_ context.Context, _ contract.Connection, cmd domain.MarkSeenCommand) (contract.Reply, error) {
	at := s.now()
	msg, changed, err := s.messages.Mutate(cmd.MessageID, func(m *domain.Message) (bool, error) {
		if err := belongsTo(m, cmd.RoomID); err != nil {
			return false, err
		}
		return m.MarkSeen(cmd.SeenBy, at), nil
	})
	if err != nil {
		return contract.Reply{}, err
	}
	if changed {
		s.broadcaster.ToRoom(msg.RoomID, event.New(event.MessageSeen, event.Seen{
			MessageID: msg.ID,
			RoomID:    msg.RoomID,
			SeenBy:    cmd.SeenBy,
			ReadTime:  at,
		}))
	}
	return contract.Reply{ID: string(msg.ID), Result: msg}, nil
}

// Delete removes the message for everyone, or hides it for the requester only.
func (s *MessageService) Delete(_ context.Context, _ contract.Connection, cmd domain.DeleteMessageCommand) (contract.Reply, error) {
	if !cmd.ForAll {
		msg, _, err := s.messages.Mutate(cmd.MessageID, func(m *domain.Message) (bool, error) {
			if err := belongsTo(m, cmd.RoomID); err != nil {
				return false, err
			}
			return m.HideForUser(cmd.UserID), nil
		})
		if err != nil {
			return contract.Reply{}, err
		}
		forAll := false
		s.broadcaster.ToUser(cmd.UserID, event.New(event.MessageDeleted, event.MessageChanged{
			MessageID: msg.ID,
			RoomID:    msg.RoomID,
			ForAll:    &forAll,
		}))
		return contract.Reply{ID: string(msg.ID)}, nil
	}

	msg, err := s.messages.Get(cmd.MessageID)
	if err != nil {
		return contract.Reply{}, err
	}
	if err := belongsTo(&msg, cmd.RoomID); err != nil {
		return contract.Reply{}, err
	}
	before, err := s.rooms.Get(msg.RoomID)
	if err != nil {
		return contract.Reply{}, err
	}
	room, err := s.messages.Delete(msg.ID)
	if err != nil {
		return contract.Reply{}, err
	}
	forAll := true
	s.broadcaster.ToRoom(room.ID, event.New(event.MessageDeleted, event.MessageChanged{
		MessageID: msg.ID,
		RoomID:    room.ID,
		ForAll:    &forAll,
	}))
	if before.LastMessageID() == msg.ID {
		s.broadcaster.ToRoom(room.ID, event.New(event.LastMessageUpdate, event.LastMessage{
			RoomID:  room.ID,
			Message: s.LastMessage(room),
		}))
	}
	return contract.Reply{ID: string(msg.ID)}, nil
}

func (s *MessageService) UpdateLastRead(_ context.Context, conn contract.Connection, cmd domain.UpdateLastReadCommand) (contract.Reply, error) {
	if _, err := s.users.SetReadPosition(cmd.UserID, cmd.RoomID, cmd.ScrollPos); err != nil {
		return contract.Reply{}, err
	}
	if cmd.EmitBack {
		_ = s.broadcaster.ToConnection(conn, event.New(event.LastReadUpdate, event.LastRead{
			RoomID:    cmd.RoomID,
			UserID:    cmd.UserID,
			ScrollPos: cmd.ScrollPos,
		}))
	}
	return contract.Reply{ID: string(cmd.RoomID)}, nil
}

// ListenVoice records the first play of a voice message by a user.
func (s *MessageService) ListenVoice(_ context.Context, _ contract.Connection, cmd domain.ListenVoiceCommand) (contract.Reply, error) {
	at := s.now()
	msg, changed, err := s.messages.Mutate(cmd.MessageID, func(m *domain.Message) (bool, error) {
		if err := belongsTo(m, cmd.RoomID); err != nil {
			return false, err
		}
		if m.Voice == nil {
			return false, errors.Validation("message %s has no voice attachment", m.ID)
		}
		return m.MarkPlayed(cmd.UserID, at), nil
	})
	if err != nil {
		return contract.Reply{}, err
	}
	if changed {
		s.broadcaster.ToRoom(msg.RoomID, event.New(event.VoiceListened, event.VoicePlayed{
			MessageID: msg.ID,
			RoomID:    msg.RoomID,
			UserID:    cmd.UserID,
			At:        at,
		}))
	}
	return contract.Reply{ID: string(msg.ID), Result: msg.Voice}, nil
}

func (s *MessageService) GetVoiceListeners(_ context.Context, _ contract.Connection, cmd domain.GetVoiceListenersCommand) (contract.Reply, error) {
	msg, err := s.messages.Get(cmd.MessageID)
	if err != nil {
		return contract.Reply{}, err
	}
	listeners := []Listener{}
	if msg.Voice == nil {
		return contract.Reply{ID: string(msg.ID), Result: listeners}, nil
	}
	users, err := s.users.GetMany(lo.Map(msg.Voice.PlayedBy, func(p domain.VoicePlay, _ int) domain.UserID { return p.UserID }))
	if err != nil {
		return contract.Reply{}, err
	}
	byID := lo.KeyBy(users, func(u domain.User) domain.UserID { return u.ID })
	for _, play := range msg.Voice.PlayedBy {
		profile := domain.Profile{ID: play.UserID}
		if user, ok := byID[play.UserID]; ok {
			profile = user.Profile()
		}
		listeners = append(listeners, Listener{User: profile, At: play.At})
	}
	return contract.Reply{ID: string(msg.ID), Result: listeners}, nil
}

func (s *MessageService) GetMessages(_ context.Context, _ contract.Connection, cmd domain.GetMessagesCommand) (contract.Reply, error) {
	if _, err := s.rooms.Get(cmd.RoomID); err != nil {
		return contract.Reply{}, err
	}
	messages, next, err := s.messages.List(cmd.RoomID, cmd.UserID, cmd.Cursor, cmd.Limit)
	if err != nil {
		return contract.Reply{}, err
	}
	return contract.Reply{ID: string(cmd.RoomID), Result: MessagePage{Messages: messages, Cursor: next}}, nil
}

// LastMessage returns the newest message of the room with its sender
// profile, nil for an empty room.
func (s *MessageService) LastMessage(room domain.Room) *event.DeliveredMessage {
	lastID := room.LastMessageID()
	if lastID == "" {
		return nil
	}
	msg, err := s.messages.Get(lastID)
	if err != nil {
		s.log.Warn("Last message not readable", "room_id", room.ID, "message_id", lastID, "error", err)
		return nil
	}
	delivered := s.deliverable(msg)
	return &delivered
}

func (s *MessageService) refreshLastMessage(msg domain.Message) {
	room, err := s.rooms.Get(msg.RoomID)
	if err != nil {
		s.log.Warn("Room not readable after message change", "room_id", msg.RoomID, "error", err)
		return
	}
	if room.LastMessageID() != msg.ID {
		return
	}
	delivered := s.deliverable(msg)
	s.broadcaster.ToRoom(room.ID, event.New(event.LastMessageUpdate, event.LastMessage{RoomID: room.ID, Message: &delivered}))
}

func (s *MessageService) deliverable(msg domain.Message) event.DeliveredMessage {
	profile := domain.Profile{ID: msg.Sender}
	if sender, err := s.users.Get(msg.Sender); err == nil {
		profile = sender.Profile()
	} else {
		s.log.Debug("Sender profile not found", "user_id", msg.Sender, "error", err)
	}
	return event.DeliveredMessage{Message: msg, SenderProfile: profile}
}

func (s *MessageService) censor(body string) string {
	if s.moderator == nil || body == "" {
		return body
	}
	censored, words := s.moderator.Censor(body)
	if len(words) > 0 {
		s.log.Debug("Message censored", "words", len(words))
	}
	return censored
}

func belongsTo(m *domain.Message, roomID domain.RoomID) error {
	if m.RoomID != roomID {
		return errors.ErrMessageNotFound
	}
	return nil
}
