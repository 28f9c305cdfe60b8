// Package event holds the wire envelope and the named events exchanged with
// clients over their connection.
package event

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"encoding/json"
	"time"
)

type Name string

// Inbound events.
const (
	Subscribe          Name = "subscribe"
	SendMessage        Name = "send-message"
	EditMessage        Name = "edit-message"
	DeleteMessage      Name = "delete-message"
	PinMessage         Name = "pin-message"
	MarkSeen           Name = "mark-seen"
	UpdateLastRead     Name = "update-last-read"
	ListenVoice        Name = "listen-voice"
	GetVoiceListeners  Name = "get-voice-listeners"
	GetRoom            Name = "get-room"
	GetRoomMembers     Name = "get-room-members"
	GetMessages        Name = "get-messages"
	CreateRoom         Name = "create-room"
	JoinRoom           Name = "join-room"
	DeleteRoom         Name = "delete-room"
	UpdateRoom         Name = "update-room"
	Typing             Name = "typing"
	StopTyping         Name = "stop-typing"
	CallInitiate       Name = "call:initiate"
	CallAccept         Name = "call:accept"
	CallReject         Name = "call:reject"
	CallCancel         Name = "call:cancel"
	CallEnd            Name = "call:end"
	CallIceCandidate   Name = "call:ice-candidate"
	GetCallHistory     Name = "get-call-history"
	GetRoomCallHistory Name = "get-room-call-history"
	UpdateUser         Name = "update-user"
	GetUser            Name = "get-user"

	// Disconnect is never sent by a client, the transport submits it when a
	// connection goes away.
	Disconnect Name = "disconnect"
)

// Outbound events.
const (
	Ack                Name = "ack"
	MessageDelivered   Name = "message-delivered"
	MessageIDUpdate    Name = "message-id-update"
	LastMessageUpdate  Name = "last-message-update"
	MessageEdited      Name = "message-edited"
	MessageDeleted     Name = "message-deleted"
	MessagePinned      Name = "message-pinned"
	MessageSeen        Name = "message-seen"
	LastReadUpdate     Name = "last-read-update"
	VoiceListened      Name = "voice-listened"
	RoomCreated        Name = "room-created"
	RoomJoined         Name = "room-joined"
	RoomDeleted        Name = "room-deleted"
	RoomUpdated        Name = "room-updated"
	CallIncoming       Name = "call:incoming"
	CallInitiated      Name = "call:initiated"
	CallUserOffline    Name = "call:user-offline"
	CallAccepted       Name = "call:accepted"
	CallCancelled      Name = "call:cancelled"
	CallRejected       Name = "call:rejected"
	CallEnded          Name = "call:ended"
	UserUpdated        Name = "user-updated"
	ParticipantUpdated Name = "participant-updated"
	PresenceSnapshot   Name = "presence-snapshot"
)

// Inbound is what a client sends. Data stays raw until the router knows
// which payload to decode it into.
type Inbound struct {
	Event Name            `json:"event"`
	AckID string          `json:"ackId,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Outbound is what the coordinator sends.
type Outbound struct {
	Event Name   `json:"event"`
	AckID string `json:"ackId,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func New(name Name, data any) Outbound {
	return Outbound{Event: name, Data: data}
}

// AckPayload answers exactly one inbound event carrying an ack id.
type AckPayload struct {
	Success bool            `json:"success"`
	ID      string          `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *errors.Failure `json:"error,omitempty"`
}

func Success(ackID, id string, result any) Outbound {
	return Outbound{Event: Ack, AckID: ackID, Data: AckPayload{Success: true, ID: id, Result: result}}
}

// Failure carries the classified error, and the existing entity for conflicts.
func Failure(ackID string, err error, result any) Outbound {
	failure := errors.MapToFailure(err)
	return Outbound{Event: Ack, AckID: ackID, Data: AckPayload{Success: false, Result: result, Error: &failure}}
}

// Outbound payloads.

type DeliveredMessage struct {
	domain.Message
	SenderProfile domain.Profile `json:"senderProfile"`
}

type MessageIDUpdated struct {
	TempID string           `json:"tempID"`
	ID     domain.MessageID `json:"id"`
}

type LastMessage struct {
	RoomID  domain.RoomID     `json:"roomID"`
	Message *DeliveredMessage `json:"message"`
}

type MessageChanged struct {
	MessageID domain.MessageID `json:"messageID"`
	RoomID    domain.RoomID    `json:"roomID"`
	Body      string           `json:"body,omitempty"`
	PinnedAt  *time.Time       `json:"pinnedAt,omitempty"`
	Pinned    *bool            `json:"pinned,omitempty"`
	ForAll    *bool            `json:"forAll,omitempty"`
}

type Seen struct {
	MessageID domain.MessageID `json:"messageID"`
	RoomID    domain.RoomID    `json:"roomID"`
	SeenBy    domain.UserID    `json:"seenBy"`
	ReadTime  time.Time        `json:"readTime"`
}

type LastRead struct {
	RoomID    domain.RoomID `json:"roomID"`
	UserID    domain.UserID `json:"userID"`
	ScrollPos float64       `json:"scrollPos"`
}

type VoicePlayed struct {
	MessageID domain.MessageID `json:"messageID"`
	RoomID    domain.RoomID    `json:"roomID"`
	UserID    domain.UserID    `json:"userID"`
	At        time.Time        `json:"at"`
}

type RoomEvent struct {
	Room domain.Room `json:"room"`
}

type RoomMember struct {
	RoomID domain.RoomID  `json:"roomID"`
	User   domain.Profile `json:"user"`
}

type RoomRef struct {
	RoomID domain.RoomID `json:"roomID"`
}

type TypingIndicator struct {
	RoomID domain.RoomID `json:"roomID"`
	Sender domain.UserID `json:"sender"`
}

type IncomingCall struct {
	From   domain.UserID   `json:"from"`
	Signal domain.Signal   `json:"signal,omitempty"`
	Type   domain.CallType `json:"type"`
	RoomID domain.RoomID   `json:"roomID"`
	CallID domain.CallID   `json:"callId"`
}

type CallState struct {
	CallID domain.CallID     `json:"callId"`
	RoomID domain.RoomID     `json:"roomID"`
	Status domain.CallStatus `json:"status"`
}

type CallAnswer struct {
	Signal domain.Signal `json:"signal,omitempty"`
	RoomID domain.RoomID `json:"roomID"`
	CallID domain.CallID `json:"callId"`
}

type UserOffline struct {
	UserID domain.UserID `json:"userID"`
	RoomID domain.RoomID `json:"roomID"`
	CallID domain.CallID `json:"callId"`
}

type RelayedCandidate struct {
	From      domain.UserID       `json:"from"`
	RoomID    domain.RoomID       `json:"roomID"`
	Candidate domain.ICECandidate `json:"candidate"`
}

type ParticipantChanged struct {
	RoomID domain.RoomID  `json:"roomID"`
	User   domain.Profile `json:"user"`
}

type Presence struct {
	Online []domain.PresenceEntry `json:"online"`
}
