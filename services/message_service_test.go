package services

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageService_RetryDeliversOnce(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1, b1 := newConn("a1"), newConn("b1")
	h.subscribe(a1, "alice")
	h.subscribe(b1, "bob")
	room := h.privateRoom(a1)
	cmd := domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "hi", TempID: "t1"}

	// When the same message is sent twice, as a client retry does
	first := h.emit(a1, event.SendMessage, cmd)
	second := h.emit(a1, event.SendMessage, cmd)

	// Then both acks carry the same canonical id
	req.True(first.Success)
	req.True(second.Success)
	req.NotEmpty(first.ID)
	req.Equal(first.ID, second.ID)

	// And exactly one message is persisted
	messages, _, err := h.messages.List(room.ID, "bob", "", 0)
	req.NoError(err)
	req.Len(messages, 1)
	stored, err := h.rooms.Get(room.ID)
	req.NoError(err)
	req.Equal([]domain.MessageID{domain.MessageID(first.ID)}, stored.MessageIDs)

	// And bob received it once, alice never through message-delivered
	delivered := b1.Named(event.MessageDelivered)
	req.Len(delivered, 1)
	payload := delivered[0].Data.(event.DeliveredMessage)
	req.Equal("hi", payload.Body)
	req.Equal(domain.UserID("alice"), payload.SenderProfile.ID)
	req.Empty(a1.Named(event.MessageDelivered))

	// And the sender learnt the canonical id for its temporary one
	updates := a1.Named(event.MessageIDUpdate)
	req.Len(updates, 2)
	req.Equal(event.MessageIDUpdated{TempID: "t1", ID: domain.MessageID(first.ID)}, updates[0].Data)
	req.NotEmpty(b1.Named(event.LastMessageUpdate))
}

func TestMessageService_RetryReachesLateConnectionsOnly(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1, b1 := newConn("a1"), newConn("b1")
	h.subscribe(a1, "alice")
	h.subscribe(b1, "bob")
	room := h.privateRoom(a1)
	cmd := domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "hi", TempID: "t1"}
	ack := h.emit(a1, event.SendMessage, cmd)

	// Given bob opens a second tab after the first delivery
	b2 := newConn("b2")
	h.subscribe(b2, "bob")

	// When the message is retried
	h.emit(a1, event.SendMessage, cmd)

	// Then only the new tab receives it
	req.Len(b1.Named(event.MessageDelivered), 1)
	req.Len(b2.Named(event.MessageDelivered), 1)
	req.True(h.services.Broadcaster.Delivered(domain.MessageID(ack.ID), "b2"))
	req.False(h.services.Broadcaster.Delivered(domain.MessageID(ack.ID), "ghost"))
}

func TestMessageService_RoomWithoutConnectionsStillPersists(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1 := newConn("a1")
	h.subscribe(a1, "alice")
	room := h.privateRoom(a1)

	// Given the only subscribed connection left the group
	h.registry.Leave(room.ID, "a1")

	ack := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "anyone?", TempID: "t1"})
	req.True(ack.Success)

	msg, err := h.messages.Get(domain.MessageID(ack.ID))
	req.NoError(err)
	req.Equal("anyone?", msg.Body)
}

func TestMessageService_SendFailures(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1 := newConn("a1")

	// Before subscribe
	ack := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: "r1", Sender: "alice", Body: "hi", TempID: "t1"})
	req.False(ack.Success)
	req.Equal(errors.KindValidation, ack.Error.Kind)

	h.subscribe(a1, "alice")

	// Missing tempID
	ack = h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: "r1", Sender: "alice", Body: "hi"})
	req.False(ack.Success)
	req.Equal(errors.KindValidation, ack.Error.Kind)

	// Unknown room
	ack = h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: "ghost", Sender: "alice", Body: "hi", TempID: "t2"})
	req.False(ack.Success)
	req.Equal(errors.KindNotFound, ack.Error.Kind)

	// Unknown event
	ack = h.emit(a1, "shout", map[string]string{})
	req.False(ack.Success)
	req.Equal(errors.KindValidation, ack.Error.Kind)
}

func TestMessageService_ReplyAndAttachment(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1 := newConn("a1")
	h.subscribe(a1, "alice")
	room := h.privateRoom(a1)

	first := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "photo", TempID: "t1",
		File: &domain.File{Name: "beach.JPG", URL: "https://cdn/beach.jpg", Size: 1024}})
	req.True(first.Success)
	reply := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "nice", TempID: "t2",
		ReplyTo: &domain.ReplyTarget{MessageID: domain.MessageID(first.ID)}})
	req.True(reply.Success)

	target, err := h.messages.Get(domain.MessageID(first.ID))
	req.NoError(err)
	req.Equal([]domain.MessageID{domain.MessageID(reply.ID)}, target.Replies)
	req.Equal("image/jpeg", target.File.MimeType)
	req.Equal(domain.FileImage, target.File.Kind)
}

func TestMessageService_EditPinSeen(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1, b1 := newConn("a1"), newConn("b1")
	h.subscribe(a1, "alice")
	h.subscribe(b1, "bob")
	room := h.privateRoom(a1)
	sent := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "helo", TempID: "t1"})
	id := domain.MessageID(sent.ID)
	b1.Reset()

	// Edit of the last message also refreshes the room preview
	ack := h.emit(a1, event.EditMessage, domain.EditMessageCommand{MessageID: id, RoomID: room.ID, Body: "hello"})
	req.True(ack.Success)
	edited := b1.Named(event.MessageEdited)
	req.Len(edited, 1)
	req.Equal("hello", edited[0].Data.(event.MessageChanged).Body)
	req.Len(b1.Named(event.LastMessageUpdate), 1)

	// Pin toggles
	h.emit(a1, event.PinMessage, domain.PinMessageCommand{MessageID: id, RoomID: room.ID})
	h.emit(a1, event.PinMessage, domain.PinMessageCommand{MessageID: id, RoomID: room.ID})
	pins := b1.Named(event.MessagePinned)
	req.Len(pins, 2)
	req.True(*pins[0].Data.(event.MessageChanged).Pinned)
	req.False(*pins[1].Data.(event.MessageChanged).Pinned)

	// Seen is broadcast once per viewer
	h.emit(b1, event.MarkSeen, domain.MarkSeenCommand{MessageID: id, RoomID: room.ID, SeenBy: "bob"})
	h.emit(b1, event.MarkSeen, domain.MarkSeenCommand{MessageID: id, RoomID: room.ID, SeenBy: "bob"})
	req.Len(a1.Named(event.MessageSeen), 1)
	unseen, err := h.messages.CountUnseen(room.ID, "bob")
	req.NoError(err)
	req.Zero(unseen)

	// A message of another room is not found
	ack = h.emit(a1, event.EditMessage, domain.EditMessageCommand{MessageID: id, RoomID: "elsewhere", Body: "x"})
	req.False(ack.Success)
	req.Equal(errors.KindNotFound, ack.Error.Kind)
}

func TestMessageService_Delete(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1, b1 := newConn("a1"), newConn("b1")
	h.subscribe(a1, "alice")
	h.subscribe(b1, "bob")
	room := h.privateRoom(a1)
	first := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "one", TempID: "t1"})
	second := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "two", TempID: "t2"})
	b1.Reset()

	// When bob hides the first message for bob only
	ack := h.emit(b1, event.DeleteMessage, domain.DeleteMessageCommand{MessageID: domain.MessageID(first.ID), RoomID: room.ID, UserID: "bob"})
	req.True(ack.Success)

	// Then only bob is told and only bob stops seeing it
	req.Len(b1.Named(event.MessageDeleted), 1)
	req.Empty(a1.Named(event.MessageDeleted))
	forBob, _, err := h.messages.List(room.ID, "bob", "", 0)
	req.NoError(err)
	req.Len(forBob, 1)
	forAlice, _, err := h.messages.List(room.ID, "alice", "", 0)
	req.NoError(err)
	req.Len(forAlice, 2)

	// When alice deletes the last message for everyone
	ack = h.emit(a1, event.DeleteMessage, domain.DeleteMessageCommand{MessageID: domain.MessageID(second.ID), RoomID: room.ID, UserID: "alice", ForAll: true})
	req.True(ack.Success)

	// Then the room is told and the preview falls back to the previous message
	req.Len(b1.Named(event.MessageDeleted), 2)
	previews := b1.Named(event.LastMessageUpdate)
	req.Len(previews, 1)
	req.Equal(domain.MessageID(first.ID), previews[0].Data.(event.LastMessage).Message.ID)
	_, err = h.messages.Get(domain.MessageID(second.ID))
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageService_RetryAfterDeleteForAll(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1, b1 := newConn("a1"), newConn("b1")
	h.subscribe(a1, "alice")
	h.subscribe(b1, "bob")
	room := h.privateRoom(a1)
	cmd := domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: "oops", TempID: "t1"}
	sent := h.emit(a1, event.SendMessage, cmd)
	req.True(sent.Success)
	ack := h.emit(a1, event.DeleteMessage, domain.DeleteMessageCommand{MessageID: domain.MessageID(sent.ID), RoomID: room.ID, UserID: "alice", ForAll: true})
	req.True(ack.Success)
	b1.Reset()

	// When the lost ack of the first send gets retried
	retried := h.emit(a1, event.SendMessage, cmd)

	// Then the deleted id comes back and nothing is created or delivered
	req.True(retried.Success)
	req.Equal(sent.ID, retried.ID)
	req.True(retried.Result.(domain.Message).Deleted)
	msgs, _, err := h.messages.List(room.ID, "bob", "", 0)
	req.NoError(err)
	req.Empty(msgs)
	req.Empty(b1.Named(event.MessageDelivered))
	req.Empty(b1.Named(event.LastMessageUpdate))
}

func TestMessageService_VoiceAndReadPosition(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1, b1 := newConn("a1"), newConn("b1")
	h.subscribe(a1, "alice")
	h.subscribe(b1, "bob")
	room := h.privateRoom(a1)
	sent := h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", TempID: "t1",
		Voice: &domain.Voice{Src: "https://cdn/voice.ogg", Duration: 3.5}})
	req.True(sent.Success, "%+v", sent.Error)
	id := domain.MessageID(sent.ID)

	// A voice play is recorded once per listener
	h.emit(b1, event.ListenVoice, domain.ListenVoiceCommand{MessageID: id, RoomID: room.ID, UserID: "bob"})
	h.emit(b1, event.ListenVoice, domain.ListenVoiceCommand{MessageID: id, RoomID: room.ID, UserID: "bob"})
	req.Len(a1.Named(event.VoiceListened), 1)

	ack := h.emit(a1, event.GetVoiceListeners, domain.GetVoiceListenersCommand{MessageID: id})
	req.True(ack.Success)
	listeners := ack.Result.([]Listener)
	req.Len(listeners, 1)
	req.Equal(domain.UserID("bob"), listeners[0].User.ID)

	// The read position is echoed back only on request
	h.emit(b1, event.UpdateLastRead, domain.UpdateLastReadCommand{RoomID: room.ID, UserID: "bob", ScrollPos: 120})
	req.Empty(b1.Named(event.LastReadUpdate))
	h.emit(b1, event.UpdateLastRead, domain.UpdateLastReadCommand{RoomID: room.ID, UserID: "bob", ScrollPos: 240, EmitBack: true})
	req.Len(b1.Named(event.LastReadUpdate), 1)
	bob, err := h.users.Get("bob")
	req.NoError(err)
	req.Equal([]domain.ReadPosition{{RoomID: room.ID, ScrollPos: 240}}, bob.ReadPositions)
}

func TestMessageService_GetMessages(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	a1 := newConn("a1")
	h.subscribe(a1, "alice")
	room := h.privateRoom(a1)
	for _, tempID := range []string{"t1", "t2", "t3"} {
		h.emit(a1, event.SendMessage, domain.SendMessageCommand{RoomID: room.ID, Sender: "alice", Body: tempID, TempID: tempID})
	}

	ack := h.emit(a1, event.GetMessages, domain.GetMessagesCommand{RoomID: room.ID, UserID: "alice", Limit: 2})
	req.True(ack.Success)
	page := ack.Result.(MessagePage)
	req.Len(page.Messages, 2)
	req.Equal("t3", page.Messages[0].Body)
	req.NotEmpty(page.Cursor)

	ack = h.emit(a1, event.GetMessages, domain.GetMessagesCommand{RoomID: room.ID, UserID: "alice", Limit: 2, Cursor: page.Cursor})
	page = ack.Result.(MessagePage)
	req.Len(page.Messages, 1)
	req.Equal("t1", page.Messages[0].Body)

	ack = h.emit(a1, event.GetMessages, domain.GetMessagesCommand{RoomID: "ghost", UserID: "alice"})
	req.False(ack.Success)
	req.Equal(errors.KindNotFound, ack.Error.Kind)
}
