package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
)

type TypingService struct {
	typing      contract.ITypingSet
	broadcaster *Broadcaster
}

func NewTypingService(typing contract.ITypingSet, broadcaster *Broadcaster) *TypingService {
	return &TypingService{typing: typing, broadcaster: broadcaster}
}

// Typing is a no-op while the indicator is already on.
func (s *TypingService) Typing(_ context.Context, conn contract.Connection, cmd domain.TypingCommand) (contract.Reply, error) {
	if s.typing.Start(cmd.RoomID, cmd.Sender) {
		s.broadcaster.ToRoom(cmd.RoomID, event.New(event.Typing, event.TypingIndicator{
			RoomID: cmd.RoomID,
			Sender: cmd.Sender,
		}), conn.ID())
	}
	return contract.Reply{ID: string(cmd.RoomID)}, nil
}

func (s *TypingService) StopTyping(_ context.Context, conn contract.Connection, cmd domain.TypingCommand) (contract.Reply, error) {
	s.typing.Stop(cmd.RoomID, cmd.Sender)
	s.broadcaster.ToRoom(cmd.RoomID, event.New(event.StopTyping, event.TypingIndicator{
		RoomID: cmd.RoomID,
		Sender: cmd.Sender,
	}), conn.ID())
	return contract.Reply{ID: string(cmd.RoomID)}, nil
}

// Clear drops every indicator of a user gone offline.
func (s *TypingService) Clear(userID domain.UserID) {
	for _, roomID := range s.typing.ClearUser(userID) {
		s.broadcaster.ToRoom(roomID, event.New(event.StopTyping, event.TypingIndicator{
			RoomID: roomID,
			Sender: userID,
		}))
	}
}
