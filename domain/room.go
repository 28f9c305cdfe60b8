package domain

import (
	"chat-relay/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type RoomID string

type RoomType string

const (
	RoomPrivate RoomType = "private"
	RoomGroup   RoomType = "group"
	RoomChannel RoomType = "channel"
)

type Room struct {
	ID           RoomID      `json:"id"`
	Name         string      `json:"name"`
	Type         RoomType    `json:"type"`
	Creator      UserID      `json:"creator"`
	Participants []UserID    `json:"participants"`
	Admins       []UserID    `json:"admins"`
	MessageIDs   []MessageID `json:"messageIDs"`
	Avatar       string      `json:"avatar,omitempty"`
	Description  string      `json:"description,omitempty"`
	Biography    string      `json:"biography,omitempty"`
	Link         string      `json:"link,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// NewRoom builds a room from a creation request and enforces the membership
// invariants: no duplicate participant, exactly two for a private room.
// A missing id is generated, the creator always ends up participant and admin.
func NewRoom(spec RoomSpec, at time.Time) (Room, error) {
	participants := lo.Uniq(lo.Filter(spec.Participants, func(id UserID, _ int) bool { return id != "" }))
	if spec.Creator != "" && spec.Type != RoomPrivate && !lo.Contains(participants, spec.Creator) {
		participants = append(participants, spec.Creator)
	}
	if spec.Type == RoomPrivate && len(participants) != 2 {
		return Room{}, errors.ErrPrivateRoomParticipants
	}
	if len(participants) == 0 {
		return Room{}, errors.Validation("a room needs at least one participant")
	}

	admins := lo.Uniq(lo.Filter(spec.Admins, func(id UserID, _ int) bool {
		return lo.Contains(participants, id)
	}))
	if spec.Creator != "" && spec.Type != RoomPrivate && !lo.Contains(admins, spec.Creator) {
		admins = append(admins, spec.Creator)
	}

	id := spec.ID
	if id == "" {
		id = RoomID(uuid.NewString())
	}
	return Room{
		ID:           id,
		Name:         spec.Name,
		Type:         spec.Type,
		Creator:      spec.Creator,
		Participants: participants,
		Admins:       admins,
		MessageIDs:   []MessageID{},
		Avatar:       spec.Avatar,
		Description:  spec.Description,
		Biography:    spec.Biography,
		Link:         spec.Link,
		CreatedAt:    at,
		UpdatedAt:    at,
	}, nil
}

// HasParticipant reports whether userID is a member of the room.
func (r Room) HasParticipant(userID UserID) bool {
	return lo.Contains(r.Participants, userID)
}

// AddParticipant is idempotent and reports whether the membership changed.
// A private room never grows beyond its two members.
func (r *Room) AddParticipant(userID UserID) (bool, error) {
	if r.HasParticipant(userID) {
		return false, nil
	}
	if r.Type == RoomPrivate {
		return false, errors.ErrPrivateRoomParticipants
	}
	r.Participants = append(r.Participants, userID)
	return true, nil
}

// AppendMessage keeps the sequence append-only and free of duplicates.
func (r *Room) AppendMessage(id MessageID) {
	if lo.Contains(r.MessageIDs, id) {
		return
	}
	r.MessageIDs = append(r.MessageIDs, id)
}

func (r *Room) RemoveMessage(id MessageID) {
	r.MessageIDs = lo.Without(r.MessageIDs, id)
}

// LastMessageID is empty when the room has no message.
func (r Room) LastMessageID() MessageID {
	if len(r.MessageIDs) == 0 {
		return ""
	}
	return r.MessageIDs[len(r.MessageIDs)-1]
}

// RoomUpdate carries the optional fields of an update-room request.
type RoomUpdate struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=64"`
	Avatar      *string   `json:"avatar,omitempty"`
	Description *string   `json:"description,omitempty"`
	Biography   *string   `json:"biography,omitempty"`
	Link        *string   `json:"link,omitempty"`
	Admins      *[]UserID `json:"admins,omitempty"`
}

func (u RoomUpdate) Apply(r *Room, at time.Time) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Avatar != nil {
		r.Avatar = *u.Avatar
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Biography != nil {
		r.Biography = *u.Biography
	}
	if u.Link != nil {
		r.Link = *u.Link
	}
	if u.Admins != nil {
		r.Admins = lo.Uniq(lo.Filter(*u.Admins, func(id UserID, _ int) bool {
			return r.HasParticipant(id)
		}))
	}
	r.UpdatedAt = at
}
