package services

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"time"

	"github.com/pion/webrtc/v4"
)

// Ack results of the read operations.

type RoomSummary struct {
	Room        domain.Room             `json:"room"`
	Unseen      int                     `json:"unseen"`
	LastMessage *event.DeliveredMessage `json:"lastMessage,omitempty"`
}

type SubscribeResult struct {
	UserID     domain.UserID          `json:"userID"`
	Rooms      []RoomSummary          `json:"rooms"`
	IceServers []webrtc.ICEServer     `json:"iceServers"`
	Online     []domain.PresenceEntry `json:"online"`
}

type RoomDetails struct {
	Room         domain.Room      `json:"room"`
	Participants []domain.Profile `json:"participants"`
}

type MessagePage struct {
	Messages []domain.Message `json:"messages"`
	Cursor   string           `json:"cursor,omitempty"`
}

type Listener struct {
	User domain.Profile `json:"user"`
	At   time.Time      `json:"at"`
}

type CallHistory struct {
	Calls []domain.CallHistoryEntry `json:"calls"`
}
