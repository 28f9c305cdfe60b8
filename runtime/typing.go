package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"sync"
)

var _ contract.ITypingSet = (*TypingSet)(nil)

type typingKey struct {
	roomID domain.RoomID
	userID domain.UserID
}

// TypingSet deduplicates typing indicators by (room, user).
type TypingSet struct {
	mu     sync.Mutex
	typing map[typingKey]struct{}
}

func NewTypingSet() *TypingSet {
	return &TypingSet{typing: make(map[typingKey]struct{})}
}

// Start reports whether the indicator was added. A repeated start is a no-op.
func (t *TypingSet) Start(roomID domain.RoomID, userID domain.UserID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := typingKey{roomID: roomID, userID: userID}
	if _, ok := t.typing[key]; ok {
		return false
	}
	t.typing[key] = struct{}{}
	return true
}

// Stop reports whether an indicator was removed.
func (t *TypingSet) Stop(roomID domain.RoomID, userID domain.UserID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := typingKey{roomID: roomID, userID: userID}
	if _, ok := t.typing[key]; !ok {
		return false
	}
	delete(t.typing, key)
	return true
}

// ClearUser removes every indicator of a user and returns the rooms it was typing in.
func (t *TypingSet) ClearUser(userID domain.UserID) []domain.RoomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	var rooms []domain.RoomID
	for key := range t.typing {
		if key.userID == userID {
			rooms = append(rooms, key.roomID)
			delete(t.typing, key)
		}
	}
	return rooms
}
