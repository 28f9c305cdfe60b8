package domain

import (
	"encoding/json"
)

// Inbound payloads, one per client event. Required fields are enforced with
// validator tags, see Validate. Ids that end up in index keys exclude ":".

type SubscribeCommand struct {
	UserID UserID `json:"userID" validate:"required,excludes=:"`
}

type ReplyTarget struct {
	MessageID MessageID       `json:"messageID" validate:"required"`
	Preview   json.RawMessage `json:"preview,omitempty"`
}

type SendMessageCommand struct {
	RoomID  RoomID       `json:"roomID" validate:"required"`
	Sender  UserID       `json:"sender" validate:"required"`
	Body    string       `json:"body" validate:"required_without_all=Voice File,max=4096"`
	TempID  string       `json:"tempID" validate:"required"`
	ReplyTo *ReplyTarget `json:"replyTo,omitempty" validate:"omitempty"`
	Voice   *Voice       `json:"voice,omitempty" validate:"omitempty"`
	File    *File        `json:"file,omitempty" validate:"omitempty"`
}

type EditMessageCommand struct {
	MessageID MessageID `json:"messageID" validate:"required"`
	RoomID    RoomID    `json:"roomID" validate:"required"`
	Body      string    `json:"body" validate:"required,max=4096"`
}

type DeleteMessageCommand struct {
	MessageID MessageID `json:"messageID" validate:"required"`
	RoomID    RoomID    `json:"roomID" validate:"required"`
	UserID    UserID    `json:"userID" validate:"required"`
	ForAll    bool      `json:"forAll"`
}

type PinMessageCommand struct {
	MessageID MessageID `json:"messageID" validate:"required"`
	RoomID    RoomID    `json:"roomID" validate:"required"`
}

type MarkSeenCommand struct {
	MessageID MessageID `json:"messageID" validate:"required"`
	RoomID    RoomID    `json:"roomID" validate:"required"`
	SeenBy    UserID    `json:"seenBy" validate:"required"`
}

type UpdateLastReadCommand struct {
	RoomID    RoomID  `json:"roomID" validate:"required"`
	UserID    UserID  `json:"userID" validate:"required"`
	ScrollPos float64 `json:"scrollPos" validate:"gte=0"`
	EmitBack  bool    `json:"emitBack"`
}

type ListenVoiceCommand struct {
	MessageID MessageID `json:"messageID" validate:"required"`
	RoomID    RoomID    `json:"roomID" validate:"required"`
	UserID    UserID    `json:"userID" validate:"required"`
}

type GetVoiceListenersCommand struct {
	MessageID MessageID `json:"messageID" validate:"required"`
}

// GetRoomCommand looks a room up by id, or by name for private rooms.
type GetRoomCommand struct {
	RoomID RoomID `json:"roomID" validate:"required_without=Name"`
	Name   string `json:"name"`
}

type GetRoomMembersCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
}

type GetMessagesCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
	UserID UserID `json:"userID" validate:"required"`
	Cursor string `json:"cursor"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=200"`
}

// RoomSpec is the creation request of a room.
type RoomSpec struct {
	ID           RoomID   `json:"id" validate:"omitempty,excludes=:"`
	Name         string   `json:"name" validate:"required,max=64"`
	Type         RoomType `json:"type" validate:"required,oneof=private group channel"`
	Creator      UserID   `json:"creator" validate:"omitempty,excludes=:"`
	Participants []UserID `json:"participants" validate:"required,min=1,dive,required,excludes=:"`
	Admins       []UserID `json:"admins"`
	Avatar       string   `json:"avatar"`
	Description  string   `json:"description"`
	Biography    string   `json:"biography"`
	Link         string   `json:"link"`
}

type FirstMessage struct {
	Sender UserID `json:"sender" validate:"required"`
	Body   string `json:"body" validate:"required,max=4096"`
	TempID string `json:"tempID"`
}

type CreateRoomCommand struct {
	Room         RoomSpec      `json:"room"`
	FirstMessage *FirstMessage `json:"firstMessage,omitempty" validate:"omitempty"`
}

type JoinRoomCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
	UserID UserID `json:"userID" validate:"required,excludes=:"`
}

type DeleteRoomCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
}

type UpdateRoomCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
	RoomUpdate
}

type TypingCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
	Sender UserID `json:"sender" validate:"required"`
}

type InitiateCallCommand struct {
	From     UserID   `json:"from" validate:"required,excludes=:"`
	To       UserID   `json:"to" validate:"required,nefield=From,excludes=:"`
	RoomID   RoomID   `json:"roomID" validate:"required"`
	CallType CallType `json:"callType" validate:"required,oneof=voice video"`
	Signal   Signal   `json:"signal"`
}

// AcceptCallCommand is sent by the receiver. To is the caller.
type AcceptCallCommand struct {
	To     UserID `json:"to" validate:"required"`
	From   UserID `json:"from"`
	RoomID RoomID `json:"roomID" validate:"required"`
	CallID CallID `json:"callId"`
	Signal Signal `json:"signal"`
}

// CallControlCommand covers cancel and reject.
type CallControlCommand struct {
	To     UserID `json:"to"`
	From   UserID `json:"from"`
	RoomID RoomID `json:"roomID" validate:"required"`
	CallID CallID `json:"callId"`
}

type EndCallCommand struct {
	To       UserID `json:"to"`
	From     UserID `json:"from"`
	RoomID   RoomID `json:"roomID" validate:"required"`
	CallID   CallID `json:"callId"`
	Duration int    `json:"duration" validate:"gte=0"`
}

type IceCandidateCommand struct {
	To        UserID       `json:"to" validate:"required"`
	RoomID    RoomID       `json:"roomID"`
	Candidate ICECandidate `json:"candidate"`
}

type GetCallHistoryCommand struct {
	UserID UserID `json:"userID" validate:"required"`
	Limit  int    `json:"limit" validate:"gte=0"`
	Skip   int    `json:"skip" validate:"gte=0"`
}

type GetRoomCallHistoryCommand struct {
	RoomID RoomID `json:"roomID" validate:"required"`
	Limit  int    `json:"limit" validate:"gte=0"`
	Skip   int    `json:"skip" validate:"gte=0"`
}

type UpdateUserCommand struct {
	UserID UserID `json:"userID" validate:"required"`
	ProfileUpdate
}

type GetUserCommand struct {
	UserID UserID `json:"userID" validate:"required"`
}
