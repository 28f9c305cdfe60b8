package domain

import (
	"time"

	"github.com/samber/lo"
)

type CallID string

// AttemptID links the caller and receiver views of one call attempt.
type AttemptID string

type CallType string

const (
	CallVoice CallType = "voice"
	CallVideo CallType = "video"
)

type CallDirection string

const (
	Outgoing CallDirection = "outgoing"
	Incoming CallDirection = "incoming"
)

type CallStatus string

const (
	CallInitiated CallStatus = "initiated"
	CallRinging   CallStatus = "ringing"
	CallAccepted  CallStatus = "accepted"
	CallRejected  CallStatus = "rejected"
	CallMissed    CallStatus = "missed"
	CallEnded     CallStatus = "ended"
	CallFailed    CallStatus = "failed"
)

// transitions lists the allowed moves out of every non-terminal status.
// Terminal statuses have no entry, they are absorbing.
var transitions = map[CallStatus][]CallStatus{
	CallInitiated: {CallRinging, CallAccepted, CallRejected, CallMissed, CallEnded, CallFailed},
	CallRinging:   {CallAccepted, CallRejected, CallMissed, CallEnded, CallFailed},
	CallAccepted:  {CallEnded},
}

func (s CallStatus) Terminal() bool {
	switch s {
	case CallEnded, CallRejected, CallMissed, CallFailed:
		return true
	default:
		return false
	}
}

// CanMoveTo reports whether the state machine allows s -> next.
func (s CallStatus) CanMoveTo(next CallStatus) bool {
	return lo.Contains(transitions[s], next)
}

func (t CallType) Valid() bool {
	return t == CallVoice || t == CallVideo
}

// CallRecord is one participant's view of an attempt.
type CallRecord struct {
	ID         CallID        `json:"id"`
	AttemptID  AttemptID     `json:"attemptID"`
	CallerID   UserID        `json:"callerID"`
	ReceiverID UserID        `json:"receiverID"`
	RoomID     RoomID        `json:"roomID"`
	Type       CallType      `json:"type"`
	Status     CallStatus    `json:"status"`
	Direction  CallDirection `json:"direction"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    *time.Time    `json:"endTime,omitempty"`
	Duration   int           `json:"duration"`
}

// Transition moves the record to next when allowed and reports whether it
// changed. Reaching a terminal status stamps the end time.
func (c *CallRecord) Transition(next CallStatus, at time.Time) bool {
	if !c.Status.CanMoveTo(next) {
		return false
	}
	c.Status = next
	if next.Terminal() {
		c.EndTime = &at
	}
	return true
}

// End moves the record to ended with the given duration in seconds.
func (c *CallRecord) End(duration int, at time.Time) bool {
	if !c.Transition(CallEnded, at) {
		return false
	}
	c.Duration = max(duration, 0)
	return true
}

// Open is true while the attempt has not reached a terminal status.
func (c CallRecord) Open() bool {
	return !c.Status.Terminal()
}

// Involves reports whether userID is one of the two parties.
func (c CallRecord) Involves(userID UserID) bool {
	return c.CallerID == userID || c.ReceiverID == userID
}

// Peer returns the other party of the call relative to userID.
func (c CallRecord) Peer(userID UserID) UserID {
	if c.CallerID == userID {
		return c.ReceiverID
	}
	return c.CallerID
}

// CallHistoryEntry is one attempt as seen by a requesting user.
type CallHistoryEntry struct {
	CallID     CallID        `json:"callId"`
	AttemptID  AttemptID     `json:"attemptID"`
	CallerID   UserID        `json:"callerID"`
	ReceiverID UserID        `json:"receiverID"`
	RoomID     RoomID        `json:"roomID"`
	Type       CallType      `json:"type"`
	Status     CallStatus    `json:"status"`
	Direction  CallDirection `json:"direction"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    *time.Time    `json:"endTime,omitempty"`
	Duration   int           `json:"duration"`
}

// HistoryEntryFor projects the record for viewer. The direction is computed
// from the viewer, not from the stored view.
func (c CallRecord) HistoryEntryFor(viewer UserID) CallHistoryEntry {
	direction := Incoming
	if c.CallerID == viewer {
		direction = Outgoing
	}
	return CallHistoryEntry{
		CallID:     c.ID,
		AttemptID:  c.AttemptID,
		CallerID:   c.CallerID,
		ReceiverID: c.ReceiverID,
		RoomID:     c.RoomID,
		Type:       c.Type,
		Status:     c.Status,
		Direction:  direction,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		Duration:   c.Duration,
	}
}
