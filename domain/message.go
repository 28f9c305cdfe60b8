// Package domain contains core concepts of the chat system.
// This file defines Message entities and related rules.
package domain

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
)

type MessageID string

// Message is a persisted chat message. TempID is the client correlation token
// used as idempotence key: one TempID never yields two messages.
type Message struct {
	ID           MessageID       `json:"id"`
	TempID       string          `json:"tempID,omitempty"`
	Sender       UserID          `json:"sender"`
	RoomID       RoomID          `json:"roomID"`
	Body         string          `json:"body"`
	SeenBy       []UserID        `json:"seenBy"`
	ReadTime     *time.Time      `json:"readTime,omitempty"`
	HideFor      []UserID        `json:"hideFor"`
	ReplyToID    MessageID       `json:"replyToID,omitempty"`
	ReplyPreview json.RawMessage `json:"replyPreview,omitempty"`
	Replies      []MessageID     `json:"replies"`
	PinnedAt     *time.Time      `json:"pinnedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	Edited       bool            `json:"edited"`
	Voice        *Voice          `json:"voice,omitempty"`
	File         *File           `json:"file,omitempty"`
	Call         *CallInfo       `json:"call,omitempty"`
	// Deleted marks the placeholder returned for a tempID whose message was
	// deleted for everyone. It is never persisted on a message.
	Deleted bool `json:"deleted,omitempty"`
}

type Voice struct {
	Src      string      `json:"src" validate:"required"`
	Duration float64     `json:"duration" validate:"gte=0"`
	PlayedBy []VoicePlay `json:"playedBy"`
}

// VoicePlay records the first time a user played a voice message.
type VoicePlay struct {
	UserID UserID    `json:"userID"`
	At     time.Time `json:"at"`
}

// File describes an attachment uploaded elsewhere; only metadata transits here.
type File struct {
	Name     string   `json:"name" validate:"required"`
	URL      string   `json:"url" validate:"required"`
	Size     int64    `json:"size" validate:"gte=0"`
	MimeType string   `json:"mimeType"`
	Kind     FileKind `json:"kind"`
}

// CallInfo is attached to the history messages synthesized for calls.
type CallInfo struct {
	CallID     CallID     `json:"callId"`
	CallType   CallType   `json:"callType"`
	CallStatus CallStatus `json:"callStatus"`
	Duration   int        `json:"duration,omitempty"`
}

// VisibleFor is false once the user deleted the message for themself.
func (m Message) VisibleFor(userID UserID) bool {
	return !lo.Contains(m.HideFor, userID)
}

// MarkSeen is set-idempotent and reports whether userID was newly added.
func (m *Message) MarkSeen(userID UserID, at time.Time) bool {
	if lo.Contains(m.SeenBy, userID) {
		return false
	}
	m.SeenBy = append(m.SeenBy, userID)
	m.ReadTime = &at
	return true
}

// HideForUser soft-deletes the message for one viewer.
func (m *Message) HideForUser(userID UserID) bool {
	if lo.Contains(m.HideFor, userID) {
		return false
	}
	m.HideFor = append(m.HideFor, userID)
	return true
}

// TogglePin pins an unpinned message and unpins a pinned one.
func (m *Message) TogglePin(at time.Time) {
	if m.PinnedAt != nil {
		m.PinnedAt = nil
		return
	}
	m.PinnedAt = &at
}

func (m *Message) Edit(body string) {
	m.Body = body
	m.Edited = true
}

func (m *Message) AddReply(id MessageID) {
	if !lo.Contains(m.Replies, id) {
		m.Replies = append(m.Replies, id)
	}
}

// MarkPlayed records the first play of a voice message by userID.
func (m *Message) MarkPlayed(userID UserID, at time.Time) bool {
	if m.Voice == nil {
		return false
	}
	if lo.ContainsBy(m.Voice.PlayedBy, func(p VoicePlay) bool { return p.UserID == userID }) {
		return false
	}
	m.Voice.PlayedBy = append(m.Voice.PlayedBy, VoicePlay{UserID: userID, At: at})
	return true
}

// UnseenBy is true for a message another participant sent and userID has
// neither seen nor hidden.
func (m Message) UnseenBy(userID UserID) bool {
	return m.Sender != userID && !lo.Contains(m.SeenBy, userID) && m.VisibleFor(userID)
}
