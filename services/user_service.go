package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"log/slog"
)

type UserService struct {
	log         *slog.Logger
	users       contract.IUserRepository
	rooms       contract.IRoomRepository
	broadcaster *Broadcaster
}

func NewUserService(log *slog.Logger, users contract.IUserRepository, rooms contract.IRoomRepository, broadcaster *Broadcaster) *UserService {
	return &UserService{log: log, users: users, rooms: rooms, broadcaster: broadcaster}
}

// Update syncs the user's own connections, and the private rooms of the
// user when a publicly visible field changed.
func (s *UserService) Update(_ context.Context, _ contract.Connection, cmd domain.UpdateUserCommand) (contract.Reply, error) {
	user, publicChanged, err := s.users.UpdateProfile(cmd.UserID, cmd.ProfileUpdate)
	if err != nil {
		return contract.Reply{}, err
	}
	s.broadcaster.ToUser(user.ID, event.New(event.UserUpdated, user))

	if publicChanged {
		rooms, err := s.rooms.RoomsOf(user.ID)
		if err != nil {
			s.log.Warn("Rooms of user not readable", "user_id", user.ID, "error", err)
		}
		for _, room := range rooms {
			if room.Type != domain.RoomPrivate {
				continue
			}
			s.broadcaster.ToRoom(room.ID, event.New(event.ParticipantUpdated, event.ParticipantChanged{
				RoomID: room.ID,
				User:   user.Profile(),
			}))
		}
	}
	return contract.Reply{ID: string(user.ID), Result: user}, nil
}

func (s *UserService) Get(_ context.Context, _ contract.Connection, cmd domain.GetUserCommand) (contract.Reply, error) {
	user, err := s.users.Get(cmd.UserID)
	if err != nil {
		return contract.Reply{}, err
	}
	return contract.Reply{ID: string(user.ID), Result: user}, nil
}
