package services

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/runtime"
	"log/slog"

	"github.com/pion/webrtc/v4"
)

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Log        *slog.Logger
	Registry   contract.IRegistry
	Typing     contract.ITypingSet
	Users      contract.IUserRepository
	Rooms      contract.IRoomRepository
	Messages   contract.IMessageRepository
	Calls      contract.ICallRepository
	Moderator  contract.IModerator
	IceServers []webrtc.ICEServer
	LedgerSize int
}

type Services struct {
	Broadcaster *Broadcaster
	Presence    *PresenceService
	Rooms       *RoomService
	Messages    *MessageService
	Typing      *TypingService
	Calls       *CallService
	Users       *UserService
}

func New(deps Dependencies) (*Services, error) {
	broadcaster, err := NewBroadcaster(deps.Log, deps.Registry, deps.LedgerSize)
	if err != nil {
		return nil, err
	}
	messages := NewMessageService(deps.Log, deps.Messages, deps.Rooms, deps.Users, broadcaster, deps.Moderator)
	typing := NewTypingService(deps.Typing, broadcaster)
	return &Services{
		Broadcaster: broadcaster,
		Presence: NewPresenceService(deps.Log, deps.Registry, deps.Users, deps.Rooms, deps.Messages,
			messages, typing, broadcaster, deps.IceServers),
		Rooms:    NewRoomService(deps.Log, deps.Rooms, deps.Users, deps.Registry, broadcaster, messages),
		Messages: messages,
		Typing:   typing,
		Calls:    NewCallService(deps.Log, deps.Calls, deps.Registry, broadcaster, messages),
		Users:    NewUserService(deps.Log, deps.Users, deps.Rooms, broadcaster),
	}, nil
}

// Routes binds every inbound event to its service.
func (s *Services) Routes(router *runtime.Router) *runtime.Router {
	return router.
		Public(event.Subscribe, runtime.Bind(s.Presence.Subscribe)).
		Public(event.Disconnect, runtime.Bind(s.Presence.Disconnect)).
		Route(event.SendMessage, runtime.Bind(s.Messages.Send)).
		Route(event.EditMessage, runtime.Bind(s.Messages.Edit)).
		Route(event.DeleteMessage, runtime.Bind(s.Messages.Delete)).
		Route(event.PinMessage, runtime.Bind(s.Messages.Pin)).
		Route(event.MarkSeen, runtime.Bind(s.Messages.MarkSeen)).
		Route(event.UpdateLastRead, runtime.Bind(s.Messages.UpdateLastRead)).
		Route(event.ListenVoice, runtime.Bind(s.Messages.ListenVoice)).
		Route(event.GetVoiceListeners, runtime.Bind(s.Messages.GetVoiceListeners)).
		Route(event.GetMessages, runtime.Bind(s.Messages.GetMessages)).
		Route(event.GetRoom, runtime.Bind(s.Rooms.Get)).
		Route(event.GetRoomMembers, runtime.Bind(s.Rooms.Members)).
		Route(event.CreateRoom, runtime.Bind(s.Rooms.Create)).
		Route(event.JoinRoom, runtime.Bind(s.Rooms.Join)).
		Route(event.DeleteRoom, runtime.Bind(s.Rooms.Delete)).
		Route(event.UpdateRoom, runtime.Bind(s.Rooms.Update)).
		Route(event.Typing, runtime.Bind(s.Typing.Typing)).
		Route(event.StopTyping, runtime.Bind(s.Typing.StopTyping)).
		Route(event.CallInitiate, runtime.Bind(s.Calls.Initiate)).
		Route(event.CallAccept, runtime.Bind(s.Calls.Accept)).
		Route(event.CallReject, runtime.Bind(s.Calls.Reject)).
		Route(event.CallCancel, runtime.Bind(s.Calls.Cancel)).
		Route(event.CallEnd, runtime.Bind(s.Calls.End)).
		Route(event.CallIceCandidate, runtime.Bind(s.Calls.RelayIceCandidate)).
		Route(event.GetCallHistory, runtime.Bind(s.Calls.History)).
		Route(event.GetRoomCallHistory, runtime.Bind(s.Calls.RoomHistory)).
		Route(event.UpdateUser, runtime.Bind(s.Users.Update)).
		Route(event.GetUser, runtime.Bind(s.Users.Get))
}
