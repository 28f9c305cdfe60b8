package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"log/slog"
	"time"
)

// RoomService handles the room lifecycle and keeps the delivery groups of
// the registry in line with the persisted membership.
type RoomService struct {
	log         *slog.Logger
	rooms       contract.IRoomRepository
	users       contract.IUserRepository
	registry    contract.IRegistry
	broadcaster *Broadcaster
	messages    *MessageService
	now         func() time.Time
}

func NewRoomService(
	log *slog.Logger,
	rooms contract.IRoomRepository,
	users contract.IUserRepository,
	registry contract.IRegistry,
	broadcaster *Broadcaster,
	messages *MessageService,
) *RoomService {
	return &RoomService{
		log:         log,
		rooms:       rooms,
		users:       users,
		registry:    registry,
		broadcaster: broadcaster,
		messages:    messages,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create persists the room with its optional first message in one
// transaction. An existing room with the same key fails with a conflict
// carrying that room.
func (s *RoomService) Create(_ context.Context, conn contract.Connection, cmd domain.CreateRoomCommand) (contract.Reply, error) {
	spec := cmd.Room
	if spec.Creator == "" {
		if entry, ok := s.registry.FindByConnection(conn.ID()); ok {
			spec.Creator = entry.UserID
		}
	}
	room, err := domain.NewRoom(spec, s.now())
	if err != nil {
		return contract.Reply{}, err
	}

	var first *domain.Message
	if cmd.FirstMessage != nil {
		msg := s.messages.BuildFirstMessage(room.ID, *cmd.FirstMessage)
		first = &msg
	}
	if err := s.rooms.Create(room, first); err != nil {
		return contract.Reply{}, err
	}
	if first != nil {
		room.AppendMessage(first.ID)
	}
	s.log.Info("Room created", "room_id", room.ID, "type", room.Type, "participants", len(room.Participants))

	for _, userID := range room.Participants {
		for _, c := range s.registry.FindByUser(userID) {
			s.registry.Join(room.ID, c.ID())
		}
	}
	s.broadcaster.ToRoom(room.ID, event.New(event.RoomCreated, event.RoomEvent{Room: room}))
	if first != nil {
		s.broadcaster.ToRoom(room.ID, event.New(event.LastMessageUpdate, event.LastMessage{
			RoomID:  room.ID,
			Message: s.messages.LastMessage(room),
		}))
	}
	return contract.Reply{ID: string(room.ID), Result: room}, nil
}

// Join adds the user to the room. Joining twice changes nothing and
// broadcasts nothing.
func (s *RoomService) Join(_ context.Context, conn contract.Connection, cmd domain.JoinRoomCommand) (contract.Reply, error) {
	room, changed, err := s.rooms.AddParticipant(cmd.RoomID, cmd.UserID)
	if err != nil {
		return contract.Reply{}, err
	}
	s.registry.Join(room.ID, conn.ID())
	for _, c := range s.registry.FindByUser(cmd.UserID) {
		s.registry.Join(room.ID, c.ID())
	}
	if changed {
		profile := domain.Profile{ID: cmd.UserID}
		if user, err := s.users.Get(cmd.UserID); err == nil {
			profile = user.Profile()
		}
		s.broadcaster.ToRoom(room.ID, event.New(event.RoomJoined, event.RoomMember{RoomID: room.ID, User: profile}))
	}
	return contract.Reply{ID: string(room.ID), Result: room}, nil
}

// Delete notifies the group before the purge, then drops the group.
func (s *RoomService) Delete(_ context.Context, _ contract.Connection, cmd domain.DeleteRoomCommand) (contract.Reply, error) {
	room, err := s.rooms.Get(cmd.RoomID)
	if err != nil {
		return contract.Reply{}, err
	}
	s.broadcaster.ToRoom(room.ID, event.New(event.RoomDeleted, event.RoomRef{RoomID: room.ID}))
	s.broadcaster.ToRoom(room.ID, event.New(event.LastMessageUpdate, event.LastMessage{RoomID: room.ID}))

	if err := s.rooms.Delete(room.ID); err != nil {
		return contract.Reply{}, err
	}
	s.registry.DropGroup(room.ID)
	s.log.Info("Room deleted", "room_id", room.ID, "messages", len(room.MessageIDs))
	return contract.Reply{ID: string(room.ID)}, nil
}

// Update reaches the group and every online participant once, even those
// that never joined the group on this process.
func (s *RoomService) Update(_ context.Context, _ contract.Connection, cmd domain.UpdateRoomCommand) (contract.Reply, error) {
	room, err := s.rooms.Update(cmd.RoomID, cmd.RoomUpdate, s.now())
	if err != nil {
		return contract.Reply{}, err
	}
	s.broadcaster.ToAudience(
		event.New(event.RoomUpdated, event.RoomEvent{Room: room}),
		[]domain.RoomID{room.ID},
		room.Participants,
	)
	return contract.Reply{ID: string(room.ID), Result: room}, nil
}

func (s *RoomService) Get(_ context.Context, _ contract.Connection, cmd domain.GetRoomCommand) (contract.Reply, error) {
	var room domain.Room
	var err error
	if cmd.RoomID != "" {
		room, err = s.rooms.Get(cmd.RoomID)
	} else {
		room, err = s.rooms.GetByName(cmd.Name)
	}
	if err != nil {
		return contract.Reply{}, err
	}
	profiles, err := s.profiles(room.Participants)
	if err != nil {
		return contract.Reply{}, err
	}
	return contract.Reply{ID: string(room.ID), Result: RoomDetails{Room: room, Participants: profiles}}, nil
}

func (s *RoomService) Members(_ context.Context, _ contract.Connection, cmd domain.GetRoomMembersCommand) (contract.Reply, error) {
	room, err := s.rooms.Get(cmd.RoomID)
	if err != nil {
		return contract.Reply{}, err
	}
	profiles, err := s.profiles(room.Participants)
	if err != nil {
		return contract.Reply{}, err
	}
	return contract.Reply{ID: string(room.ID), Result: profiles}, nil
}

func (s *RoomService) profiles(userIDs []domain.UserID) ([]domain.Profile, error) {
	users, err := s.users.GetMany(userIDs)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}
